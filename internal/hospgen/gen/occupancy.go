package gen

import "sort"

type occupancyKey struct {
	date       string
	department string
	wardType   string
}

// BuildOccupancy expands every admission into one row per calendar day from
// admit through discharge inclusive and counts beds occupied per
// (date, department, ward type). Admissions without a ward type (live mode)
// count under "General". Output is sorted for stable files; empty input
// yields an empty table.
func BuildOccupancy(admissions []Admission) []Occupancy {
	counts := map[occupancyKey]int{}
	for _, adm := range admissions {
		ward := adm.WardType
		if ward == "" {
			ward = "General"
		}
		admit := mustDate(adm.AdmitDate)
		discharge := mustDate(adm.DischargeDate)
		for d := admit; !d.After(discharge); d = d.AddDate(0, 0, 1) {
			counts[occupancyKey{
				date:       d.Format(DateLayout),
				department: adm.Department,
				wardType:   ward,
			}]++
		}
	}

	rows := make([]Occupancy, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, Occupancy{
			Date:         k.date,
			Department:   k.department,
			WardType:     k.wardType,
			BedsOccupied: n,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		if rows[i].Department != rows[j].Department {
			return rows[i].Department < rows[j].Department
		}
		return rows[i].WardType < rows[j].WardType
	})
	return rows
}
