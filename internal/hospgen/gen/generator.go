package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/amc-dataeng/hospgen/internal/hospgen/catalog"
	"github.com/amc-dataeng/hospgen/internal/hospgen/identity"
	"github.com/amc-dataeng/hospgen/internal/hospgen/sampler"
)

// Generator produces the primary entity tables for one run. All randomness
// flows through a single rand source plus one faker, so a seeded Generator is
// fully deterministic.
type Generator struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
	cat   *catalog.Catalog
	ident *identity.Synthesizer
}

// New returns a Generator with a time-seeded random source.
func New(cat *catalog.Catalog) *Generator {
	return NewSeeded(cat, time.Now().UnixNano())
}

// NewSeeded returns a deterministic Generator, used by tests.
func NewSeeded(cat *catalog.Catalog, seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	faker := gofakeit.New(uint64(seed))
	return &Generator{
		rng:   rng,
		faker: faker,
		cat:   cat,
		ident: identity.New(rng, faker, cat.Surnames),
	}
}

// Patients generates n patient rows with sequential zero-padded IDs.
// Roughly 28% are panel patients; panel_name is set iff the panel flag is.
func (g *Generator) Patients(n int) []Patient {
	// Day granularity keeps seeded runs reproducible within a calendar day.
	now := time.Now().UTC().Truncate(24 * time.Hour)
	patients := make([]Patient, 0, n)
	for i := 0; i < n; i++ {
		name, gender := g.ident.FullName()
		isPanel := g.rng.Float64() < 0.28
		p := Patient{
			PatientID: fmt.Sprintf("P%06d", i+1),
			Name:      name,
			Gender:    gender,
			DOB:       g.ident.DateOfBirth(now).Format(DateLayout),
			City:      g.cat.Cities[g.rng.Intn(len(g.cat.Cities))],
			CNIC:      g.ident.CNIC(),
			Phone:     g.ident.Phone(),
			Email:     g.ident.Email(),
			Panel:     isPanel,
		}
		if isPanel {
			p.PanelName = g.cat.Panels[g.rng.Intn(len(g.cat.Panels))]
		}
		patients = append(patients, p)
	}
	return patients
}

// Admissions generates 3 admissions per patient over [start, end]. Patients
// are sampled with replacement, so a patient may have zero or many stays.
// Length of stay is 1-12 days.
func (g *Generator) Admissions(patients []Patient, start, end time.Time) []Admission {
	n := len(patients) * 3
	spanDays := int(end.Sub(start).Hours() / 24)
	if spanDays < 0 {
		spanDays = 0
	}

	admissions := make([]Admission, 0, n)
	for i := 0; i < n; i++ {
		admit := start.AddDate(0, 0, g.rng.Intn(spanDays+1))
		los := 1 + g.rng.Intn(12)
		admissions = append(admissions, Admission{
			AdmissionID:   fmt.Sprintf("A%06d", i+1),
			PatientID:     patients[g.rng.Intn(len(patients))].PatientID,
			AdmitDate:     admit.Format(DateLayout),
			DischargeDate: admit.AddDate(0, 0, los).Format(DateLayout),
			Department:    g.cat.Departments[g.rng.Intn(len(g.cat.Departments))],
			WardType:      sampler.Pick(g.rng, g.cat.WardTypes),
			Outcome:       catalog.Outcomes[g.rng.Intn(len(catalog.Outcomes))],
		})
	}
	return admissions
}

// LivePatients generates the small per-tick patient batch with IDs scoped to
// the tick number (LP0001_001, ...).
func (g *Generator) LivePatients(batch, n int) []Patient {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	patients := make([]Patient, 0, n)
	for i := 0; i < n; i++ {
		name, gender := g.ident.FullName()
		patients = append(patients, Patient{
			PatientID: fmt.Sprintf("LP%04d_%03d", batch, i+1),
			Name:      name,
			Gender:    gender,
			DOB:       g.ident.DateOfBirth(now).Format(DateLayout),
			City:      g.cat.LiveCities[g.rng.Intn(len(g.cat.LiveCities))],
			CNIC:      g.ident.CNIC(),
			Phone:     g.ident.Phone(),
			Email:     g.ident.Email(),
		})
	}
	return patients
}

// LiveAdmissions generates n admissions for one tick: admitted today, stay
// 1-10 days, reduced department list, no ward type.
func (g *Generator) LiveAdmissions(batch, n int, patients []Patient, today time.Time) []Admission {
	admissions := make([]Admission, 0, n)
	for i := 0; i < n; i++ {
		los := 1 + g.rng.Intn(10)
		admissions = append(admissions, Admission{
			AdmissionID:   fmt.Sprintf("LA%04d_%03d", batch, i+1),
			PatientID:     patients[g.rng.Intn(len(patients))].PatientID,
			AdmitDate:     today.Format(DateLayout),
			DischargeDate: today.AddDate(0, 0, los).Format(DateLayout),
			Department:    g.cat.LiveDepartments[g.rng.Intn(len(g.cat.LiveDepartments))],
			Outcome:       catalog.Outcomes[g.rng.Intn(len(catalog.Outcomes))],
		})
	}
	return admissions
}

// stayOffset picks a uniform day offset within an admission's stay window.
func (g *Generator) stayOffset(a Admission) int {
	days := int(mustDate(a.DischargeDate).Sub(mustDate(a.AdmitDate)).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return g.rng.Intn(days + 1)
}
