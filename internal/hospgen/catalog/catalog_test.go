package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_TablesPopulated(t *testing.T) {
	cat := Default()

	assert.NotEmpty(t, cat.Cities)
	assert.NotEmpty(t, cat.Departments)
	assert.NotEmpty(t, cat.LiveDepartments)
	assert.Len(t, cat.WardTypes, 5)
	assert.Len(t, cat.Panels, 8)
	assert.NotEmpty(t, cat.Surnames)
	assert.NotEmpty(t, cat.LabTests)
	assert.NotEmpty(t, cat.Diagnostics)
	assert.NotEmpty(t, cat.Medications)

	// Every ward type must carry a daily rate.
	for _, w := range cat.WardTypes {
		if _, ok := cat.WardRates[w.Item]; !ok {
			t.Errorf("ward %q has no daily rate", w.Item)
		}
	}
	assert.Equal(t, 4500, cat.WardRates["General"])
	assert.Equal(t, 18000, cat.WardRates["ICU"])
}

func TestDefault_PositiveWeightsAndPrices(t *testing.T) {
	cat := Default()
	for _, e := range cat.LabTests {
		if e.Weight <= 0 {
			t.Errorf("lab test %q has non-positive weight %v", e.Item, e.Weight)
		}
	}
	for _, e := range cat.Diagnostics {
		if e.Weight <= 0 {
			t.Errorf("diagnostic %q has non-positive weight %v", e.Item, e.Weight)
		}
	}
	for _, m := range cat.Medications {
		if m.UnitPrice <= 0 {
			t.Errorf("medication %q has non-positive unit price %d", m.Name, m.UnitPrice)
		}
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Panels, cat.Panels)
}

func TestLoad_OverridesTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	override := `
panels:
  - "Jubilee Life"
surnames:
  - name: Janjua
    weight: 60
  - name: Minhas
    weight: 40
ward_rates:
  ICU: 20000
medications:
  - name: "Test Drug 10mg"
    unit_price: 99
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jubilee Life"}, cat.Panels)
	require.Len(t, cat.Surnames, 2)
	assert.Equal(t, "Janjua", cat.Surnames[0].Item)
	assert.Equal(t, 60.0, cat.Surnames[0].Weight)
	assert.Equal(t, 20000, cat.WardRates["ICU"])
	// Untouched rates keep defaults.
	assert.Equal(t, 4500, cat.WardRates["General"])
	require.Len(t, cat.Medications, 1)
	assert.Equal(t, 99, cat.Medications[0].UnitPrice)
	// Untouched tables keep defaults.
	assert.Equal(t, Default().Departments, cat.Departments)
}

func TestLoad_BadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cities: {not: a list}"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
