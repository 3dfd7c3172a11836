package gen

import (
	"testing"
	"time"

	"github.com/amc-dataeng/hospgen/internal/hospgen/catalog"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
var testEnd = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

func testGenerator(seed int64) *Generator {
	return NewSeeded(catalog.Default(), seed)
}

func TestPatients(t *testing.T) {
	g := testGenerator(1)
	patients := g.Patients(200)
	if len(patients) != 200 {
		t.Fatalf("len = %d, want 200", len(patients))
	}

	cities := map[string]bool{}
	for _, c := range catalog.Default().Cities {
		cities[c] = true
	}
	panels := map[string]bool{}
	for _, p := range catalog.Default().Panels {
		panels[p] = true
	}

	panelCount := 0
	for i, p := range patients {
		if want := len("P000001"); len(p.PatientID) != want || p.PatientID[0] != 'P' {
			t.Errorf("patient %d: bad id %q", i, p.PatientID)
		}
		if p.Gender != "M" && p.Gender != "F" {
			t.Errorf("patient %s: gender %q", p.PatientID, p.Gender)
		}
		if !cities[p.City] {
			t.Errorf("patient %s: city %q not in catalog", p.PatientID, p.City)
		}
		// panel_name present iff panel flag set
		if p.Panel != (p.PanelName != "") {
			t.Errorf("patient %s: panel=%v but panel_name=%q", p.PatientID, p.Panel, p.PanelName)
		}
		if p.Panel {
			panelCount++
			if !panels[p.PanelName] {
				t.Errorf("patient %s: panel_name %q not in panel list", p.PatientID, p.PanelName)
			}
		}
		if _, err := time.Parse(DateLayout, p.DOB); err != nil {
			t.Errorf("patient %s: bad dob %q", p.PatientID, p.DOB)
		}
	}
	// ~28% panel; loose band for 200 samples
	if panelCount < 20 || panelCount > 100 {
		t.Errorf("panel count = %d of 200, implausible for p=0.28", panelCount)
	}

	if got := g.Patients(0); len(got) != 0 {
		t.Errorf("Patients(0) = %d rows, want 0", len(got))
	}
}

func TestAdmissions(t *testing.T) {
	g := testGenerator(2)
	patients := g.Patients(10)
	admissions := g.Admissions(patients, testStart, testEnd)

	if len(admissions) != 30 {
		t.Fatalf("len = %d, want 3x patients = 30", len(admissions))
	}

	known := map[string]bool{}
	for _, p := range patients {
		known[p.PatientID] = true
	}
	departments := map[string]bool{}
	for _, d := range catalog.Default().Departments {
		departments[d] = true
	}
	wards := map[string]bool{}
	for _, w := range catalog.Default().WardTypes {
		wards[w.Item] = true
	}

	for _, adm := range admissions {
		if !known[adm.PatientID] {
			t.Errorf("admission %s references unknown patient %s", adm.AdmissionID, adm.PatientID)
		}
		admit := mustDate(adm.AdmitDate)
		discharge := mustDate(adm.DischargeDate)
		if admit.Before(testStart) || admit.After(testEnd) {
			t.Errorf("admission %s: admit %s outside range", adm.AdmissionID, adm.AdmitDate)
		}
		los := int(discharge.Sub(admit).Hours() / 24)
		if los < 1 || los > 12 {
			t.Errorf("admission %s: los %d outside 1-12", adm.AdmissionID, los)
		}
		if !departments[adm.Department] {
			t.Errorf("admission %s: department %q not in catalog", adm.AdmissionID, adm.Department)
		}
		if !wards[adm.WardType] {
			t.Errorf("admission %s: ward %q not in catalog", adm.AdmissionID, adm.WardType)
		}
		switch adm.Outcome {
		case "Discharged", "Referred", "Expired":
		default:
			t.Errorf("admission %s: outcome %q", adm.AdmissionID, adm.Outcome)
		}
	}
}

func TestLiveBatch(t *testing.T) {
	g := testGenerator(3)
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	patients := g.LivePatients(7, 3)
	admissions := g.LiveAdmissions(7, 10, patients, today)

	if len(patients) != 3 || len(admissions) != 10 {
		t.Fatalf("batch sizes = %d/%d, want 3/10", len(patients), len(admissions))
	}
	if patients[0].PatientID != "LP0007_001" {
		t.Errorf("live patient id = %q", patients[0].PatientID)
	}
	if admissions[9].AdmissionID != "LA0007_010" {
		t.Errorf("live admission id = %q", admissions[9].AdmissionID)
	}

	known := map[string]bool{}
	for _, p := range patients {
		known[p.PatientID] = true
	}
	for _, adm := range admissions {
		if !known[adm.PatientID] {
			t.Errorf("live admission %s references unknown patient %s", adm.AdmissionID, adm.PatientID)
		}
		if adm.AdmitDate != "2024-05-10" {
			t.Errorf("live admission %s: admit %q, want today", adm.AdmissionID, adm.AdmitDate)
		}
		los := int(mustDate(adm.DischargeDate).Sub(mustDate(adm.AdmitDate)).Hours() / 24)
		if los < 1 || los > 10 {
			t.Errorf("live admission %s: los %d outside 1-10", adm.AdmissionID, los)
		}
		if adm.WardType != "" {
			t.Errorf("live admission %s: ward type %q, want empty", adm.AdmissionID, adm.WardType)
		}
	}
}

func TestDeterministicForFixedSeed(t *testing.T) {
	a := testGenerator(11)
	b := testGenerator(11)

	pa := a.Patients(20)
	pb := b.Patients(20)
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("patient %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}

	aa := a.Admissions(pa, testStart, testEnd)
	ab := b.Admissions(pb, testStart, testEnd)
	for i := range aa {
		if aa[i] != ab[i] {
			t.Fatalf("admission %d differs: %+v vs %+v", i, aa[i], ab[i])
		}
	}
}
