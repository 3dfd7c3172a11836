package gen

import (
	"fmt"
	"math"

	"github.com/amc-dataeng/hospgen/internal/hospgen/sampler"
)

// Labs generates per-admission lab orders. The count per admission comes from
// a Gaussian with mean 2.0 and stddev 0.8, truncated and floored at 1. Order
// dates fall inside the admission's stay window; prices come from the rate
// card with a default for unpriced tests.
func (g *Generator) Labs(admissions []Admission) []Lab {
	labs := make([]Lab, 0, len(admissions)*2)
	for i, adm := range admissions {
		k := int(g.rng.NormFloat64()*0.8 + 2.0)
		if k < 1 {
			k = 1
		}
		for j := 0; j < k; j++ {
			test := sampler.Pick(g.rng, g.cat.LabTests)
			price, ok := g.cat.LabRates[test]
			if !ok {
				price = g.cat.DefaultLabRate
			}
			ordered := mustDate(adm.AdmitDate).AddDate(0, 0, g.stayOffset(adm))
			labs = append(labs, Lab{
				LabID:       fmt.Sprintf("L%06d_%d", i+1, j+1),
				AdmissionID: adm.AdmissionID,
				PatientID:   adm.PatientID,
				TestName:    test,
				OrderedDate: ordered.Format(DateLayout),
				ResultValue: round2(0.2 + g.rng.Float64()*14.8),
				Unit:        "arb",
				PricePKR:    price,
			})
		}
	}
	return labs
}

// Diagnostics generates at most one imaging/procedure record per admission,
// with probability 0.70.
func (g *Generator) Diagnostics(admissions []Admission) []Diagnostic {
	diags := make([]Diagnostic, 0, len(admissions))
	for i, adm := range admissions {
		if g.rng.Float64() >= 0.70 {
			continue
		}
		modality := sampler.Pick(g.rng, g.cat.Diagnostics)
		price, ok := g.cat.DiagnosticRates[modality]
		if !ok {
			price = g.cat.DefaultDiagnosticRate
		}
		performed := mustDate(adm.AdmitDate).AddDate(0, 0, g.stayOffset(adm))
		diags = append(diags, Diagnostic{
			DiagnosticID:  fmt.Sprintf("D%06d", i+1),
			AdmissionID:   adm.AdmissionID,
			PatientID:     adm.PatientID,
			Modality:      modality,
			PerformedDate: performed.Format(DateLayout),
			PricePKR:      price,
		})
	}
	return diags
}

// Medications generates one or two medication orders per admission (50/50),
// each with a uniform quantity 1-10 and total = unit price x quantity.
func (g *Generator) Medications(admissions []Admission) []MedicationOrder {
	meds := make([]MedicationOrder, 0, len(admissions)*2)
	for i, adm := range admissions {
		k := 2
		if g.rng.Float64() < 0.5 {
			k = 1
		}
		for j := 0; j < k; j++ {
			drug := g.cat.Medications[g.rng.Intn(len(g.cat.Medications))]
			qty := 1 + g.rng.Intn(10)
			meds = append(meds, MedicationOrder{
				MedID:         fmt.Sprintf("M%06d_%d", i+1, j+1),
				AdmissionID:   adm.AdmissionID,
				PatientID:     adm.PatientID,
				DrugName:      drug.Name,
				Quantity:      qty,
				UnitPricePKR:  drug.UnitPrice,
				TotalPricePKR: drug.UnitPrice * qty,
			})
		}
	}
	return meds
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
