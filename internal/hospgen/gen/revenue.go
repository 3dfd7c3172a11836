package gen

import "github.com/amc-dataeng/hospgen/internal/hospgen/catalog"

// BuildRevenue aggregates one revenue row per admission: room charge (ward
// daily rate x length of stay) plus the summed lab, diagnostic and medication
// prices for that admission. All amounts are integer PKR, so the total is
// exact.
func BuildRevenue(cat *catalog.Catalog, admissions []Admission, labs []Lab, diags []Diagnostic, meds []MedicationOrder) []Revenue {
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

	rows := make([]Revenue, 0, len(admissions))
	for _, adm := range admissions {
		los := int(mustDate(adm.DischargeDate).Sub(mustDate(adm.AdmitDate)).Hours() / 24)
		if los < 1 {
			los = 1
		}
		ward := adm.WardType
		if ward == "" {
			ward = "General"
		}
		rate, ok := cat.WardRates[ward]
		if !ok {
			rate = cat.DefaultWardRate
		}

		room := rate * los
		lab := labByAdm[adm.AdmissionID]
		diag := diagByAdm[adm.AdmissionID]
		pharm := medByAdm[adm.AdmissionID]
		rows = append(rows, Revenue{
			AdmissionID:    adm.AdmissionID,
			PatientID:      adm.PatientID,
			WardType:       ward,
			LOSDays:        los,
			RoomRevPKR:     room,
			LabRevPKR:      lab,
			DiagRevPKR:     diag,
			PharmacyRevPKR: pharm,
			TotalRevPKR:    room + lab + diag + pharm,
		})
	}
	return rows
}
