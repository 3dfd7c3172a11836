package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amc-dataeng/hospgen/internal/hospgen/sampler"
)

type weightedEntry struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

type pricedEntry struct {
	Name      string `yaml:"name"`
	UnitPrice int    `yaml:"unit_price"`
}

// overrideFile is the YAML shape for catalog overrides. Any table left empty
// keeps the built-in data.
type overrideFile struct {
	Cities      []string        `yaml:"cities"`
	Departments []string        `yaml:"departments"`
	Panels      []string        `yaml:"panels"`
	Surnames    []weightedEntry `yaml:"surnames"`
	WardRates   map[string]int  `yaml:"ward_rates"`
	LabRates    map[string]int  `yaml:"lab_rates"`
	DiagRates   map[string]int  `yaml:"diagnostic_rates"`
	Medications []pricedEntry   `yaml:"medications"`
}

// Load returns the default catalog with any tables present in the YAML file
// at path replacing the built-ins. An empty path returns the defaults.
func Load(path string) (*Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog override: %w", err)
	}
	var ov overrideFile
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse catalog override: %w", err)
	}

	if len(ov.Cities) > 0 {
		cat.Cities = ov.Cities
		if len(ov.Cities) < len(cat.LiveCities) {
			cat.LiveCities = ov.Cities
		} else {
			cat.LiveCities = ov.Cities[:12]
		}
	}
	if len(ov.Departments) > 0 {
		cat.Departments = ov.Departments
	}
	if len(ov.Panels) > 0 {
		cat.Panels = ov.Panels
	}
	if len(ov.Surnames) > 0 {
		cat.Surnames = nil
		for _, e := range ov.Surnames {
			cat.Surnames = append(cat.Surnames, sampler.Weighted[string]{Item: e.Name, Weight: e.Weight})
		}
	}
	for ward, rate := range ov.WardRates {
		cat.WardRates[ward] = rate
	}
	for test, rate := range ov.LabRates {
		cat.LabRates[test] = rate
	}
	for modality, rate := range ov.DiagRates {
		cat.DiagnosticRates[modality] = rate
	}
	if len(ov.Medications) > 0 {
		cat.Medications = nil
		for _, e := range ov.Medications {
			cat.Medications = append(cat.Medications, Medication{Name: e.Name, UnitPrice: e.UnitPrice})
		}
	}
	return cat, nil
}
