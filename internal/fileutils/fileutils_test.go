package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/gearcalc/internal/models"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "inputs.yaml")
	require.NoError(t, os.WriteFile(file, []byte("personal: {}"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.yaml")))
	assert.False(t, FileExists(dir))
}

func TestReadInputs_YAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "inputs.yaml")
	content := `personal:
  base_taxable_income: 100000
  ownership_percentage: 100
  marginal_tax_rate: 0.37
  medicare_levy_rate: 0.02
rental_income:
  weekly_rent: 550
  vacancy_weeks_per_year: 2
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	inputs, err := ReadInputs(file)
	require.NoError(t, err)
	assert.Equal(t, 100000.0, inputs.Personal.BaseTaxableIncome)
	assert.Equal(t, 550.0, inputs.RentalIncome.WeeklyRent)
}

func TestReadInputs_JSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "inputs.json")
	content := `{"personal": {"base_taxable_income": 90000}, "property": {"loan_amount": 480000, "loan_term_years": 30}}`
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	inputs, err := ReadInputs(file)
	require.NoError(t, err)
	assert.Equal(t, 90000.0, inputs.Personal.BaseTaxableIncome)
	assert.Equal(t, 480000.0, inputs.Property.LoanAmount)
	assert.Equal(t, 30, inputs.Property.LoanTermYears)
}

func TestReadInputs_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadInputs(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0600))
	_, err = ReadInputs(bad)
	assert.Error(t, err)
}

func TestWriteInputs_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := models.CalculatorInputs{
		Personal:     models.PersonalInputs{BaseTaxableIncome: 100000, OwnershipPercentage: 50},
		RentalIncome: models.RentalIncomeInputs{WeeklyRent: 550},
	}

	for _, name := range []string{"inputs.yaml", "inputs.json"} {
		file := filepath.Join(dir, name)
		require.NoError(t, WriteInputs(file, in))

		got, err := ReadInputs(file)
		require.NoError(t, err)
		assert.Equal(t, in, got, name)
	}
}

func TestWriteInputs_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "nested", "deeper", "inputs.yaml")

	require.NoError(t, WriteInputs(file, models.CalculatorInputs{}))
	assert.True(t, FileExists(file))
}
