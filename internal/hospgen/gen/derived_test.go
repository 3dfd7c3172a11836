package gen

import (
	"testing"

	"github.com/amc-dataeng/hospgen/internal/hospgen/catalog"
)

func TestBuildOccupancy_CountsMatchLengthOfStay(t *testing.T) {
	_, admissions := fixtureAdmissions(t, 31)
	rows := BuildOccupancy(admissions)
	if len(rows) == 0 {
		t.Fatal("no occupancy rows for non-empty admissions")
	}

	// Summed over all groups, each admission contributes one row per calendar
	// day of its stay, admit through discharge inclusive.
	wantBedDays := 0
	for _, adm := range admissions {
		los := int(mustDate(adm.DischargeDate).Sub(mustDate(adm.AdmitDate)).Hours() / 24)
		wantBedDays += los + 1
	}
	gotBedDays := 0
	for _, r := range rows {
		if r.BedsOccupied < 1 {
			t.Errorf("group (%s,%s,%s): count %d", r.Date, r.Department, r.WardType, r.BedsOccupied)
		}
		gotBedDays += r.BedsOccupied
	}
	if gotBedDays != wantBedDays {
		t.Errorf("total bed-days = %d, want %d", gotBedDays, wantBedDays)
	}
}

func TestBuildOccupancy_SingleAdmission(t *testing.T) {
	adm := Admission{
		AdmissionID:   "A000001",
		PatientID:     "P000001",
		AdmitDate:     "2024-03-01",
		DischargeDate: "2024-03-04",
		Department:    "Cardiology",
		WardType:      "Private",
	}
	rows := BuildOccupancy([]Admission{adm})
	if len(rows) != 4 {
		t.Fatalf("len = %d, want one row per day of a 3-night stay (4 dates)", len(rows))
	}
	total := 0
	for _, r := range rows {
		if r.Department != "Cardiology" || r.WardType != "Private" {
			t.Errorf("row %+v carries wrong grouping", r)
		}
		total += r.BedsOccupied
	}
	if total != 4 {
		t.Errorf("summed counts = %d, want stay length in days inclusive = 4", total)
	}
	// Sorted by date.
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Date > rows[i].Date {
			t.Errorf("rows not sorted: %s after %s", rows[i-1].Date, rows[i].Date)
		}
	}
}

func TestBuildOccupancy_Empty(t *testing.T) {
	if rows := BuildOccupancy(nil); len(rows) != 0 {
		t.Errorf("empty input produced %d rows", len(rows))
	}
}

func TestBuildRevenue(t *testing.T) {
	cat := catalog.Default()
	g, admissions := fixtureAdmissions(t, 32)
	labs := g.Labs(admissions)
	diags := g.Diagnostics(admissions)
	meds := g.Medications(admissions)

	rows := BuildRevenue(cat, admissions, labs, diags, meds)
	if len(rows) != len(admissions) {
		t.Fatalf("%d revenue rows for %d admissions, want 1:1", len(rows), len(admissions))
	}

	labByAdm := map[string]int{}
	for _, l := range labs {
		labByAdm[l.AdmissionID] += l.PricePKR
	}
	diagByAdm := map[string]int{}
	for _, d := range diags {
		diagByAdm[d.AdmissionID] += d.PricePKR
	}
	medByAdm := map[string]int{}
	for _, m := range meds {
		medByAdm[m.AdmissionID] += m.TotalPricePKR
	}
	idx := admissionIndex(admissions)

	for _, r := range rows {
		adm := idx[r.AdmissionID]
		los := int(mustDate(adm.DischargeDate).Sub(mustDate(adm.AdmitDate)).Hours() / 24)
		if los < 1 {
			los = 1
		}
		if r.LOSDays != los {
			t.Errorf("revenue %s: los %d, want %d", r.AdmissionID, r.LOSDays, los)
		}
		if want := cat.WardRates[r.WardType] * los; r.RoomRevPKR != want {
			t.Errorf("revenue %s: room %d, want %d", r.AdmissionID, r.RoomRevPKR, want)
		}
		if r.LabRevPKR != labByAdm[r.AdmissionID] {
			t.Errorf("revenue %s: lab %d, want %d", r.AdmissionID, r.LabRevPKR, labByAdm[r.AdmissionID])
		}
		if r.DiagRevPKR != diagByAdm[r.AdmissionID] {
			t.Errorf("revenue %s: diag %d, want %d", r.AdmissionID, r.DiagRevPKR, diagByAdm[r.AdmissionID])
		}
		if r.PharmacyRevPKR != medByAdm[r.AdmissionID] {
			t.Errorf("revenue %s: pharmacy %d, want %d", r.AdmissionID, r.PharmacyRevPKR, medByAdm[r.AdmissionID])
		}
		// Exact, no rounding drift.
		if r.TotalRevPKR != r.RoomRevPKR+r.LabRevPKR+r.DiagRevPKR+r.PharmacyRevPKR {
			t.Errorf("revenue %s: total %d != component sum", r.AdmissionID, r.TotalRevPKR)
		}
	}
}

func TestBuildRevenue_NoAncillaries(t *testing.T) {
	cat := catalog.Default()
	adm := Admission{
		AdmissionID:   "A000001",
		PatientID:     "P000001",
		AdmitDate:     "2024-02-01",
		DischargeDate: "2024-02-03",
		Department:    "ENT",
		WardType:      "ICU",
	}
	rows := BuildRevenue(cat, []Admission{adm}, nil, nil, nil)
	if len(rows) != 1 {
		t.Fatalf("len = %d", len(rows))
	}
	r := rows[0]
	if r.LabRevPKR != 0 || r.DiagRevPKR != 0 || r.PharmacyRevPKR != 0 {
		t.Errorf("ancillary revenue should be zero: %+v", r)
	}
	if r.TotalRevPKR != 18000*2 {
		t.Errorf("total = %d, want ICU rate x 2 days = 36000", r.TotalRevPKR)
	}
}

func TestBuildRevenue_UnknownWardFallsBack(t *testing.T) {
	cat := catalog.Default()
	adm := Admission{
		AdmissionID:   "A000001",
		PatientID:     "P000001",
		AdmitDate:     "2024-02-01",
		DischargeDate: "2024-02-02",
		Department:    "ENT",
		WardType:      "Deluxe",
	}
	rows := BuildRevenue(cat, []Admission{adm}, nil, nil, nil)
	if rows[0].RoomRevPKR != cat.DefaultWardRate {
		t.Errorf("room = %d, want default rate %d", rows[0].RoomRevPKR, cat.DefaultWardRate)
	}
}
