package common_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/gearcalc/cmd/common"
	"fjacquet/gearcalc/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))
	return file
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(old) })

	cfg, err := config.InitializeConfig()
	require.NoError(t, err)
	return cfg
}

const validScenario = `personal:
  base_taxable_income: 100000
  ownership_percentage: 100
  marginal_tax_rate: 0.37
  medicare_levy_rate: 0.02
property:
  purchase_price: 600000
  loan_amount: 480000
  interest_rate: 0.06
  loan_term_years: 30
rental_income:
  weekly_rent: 550
  vacancy_weeks_per_year: 2
operating_expenses:
  council_rates: 2000
  water_rates: 900
  insurance: 1400
  property_management: 1800
  repairs_maintenance: 500
  strata_fees: 300
  other: 100
depreciation:
  construction_value: 300000
  plant_equipment_annual: 5000
`

func TestLoadInputs(t *testing.T) {
	log := logrus.New()

	file := writeScenario(t, validScenario)
	inputs, err := common.LoadInputs(file, log)
	require.NoError(t, err)
	assert.Equal(t, 550.0, inputs.RentalIncome.WeeklyRent)

	_, err = common.LoadInputs("", log)
	assert.Error(t, err)

	_, err = common.LoadInputs(filepath.Join(t.TempDir(), "missing.yaml"), log)
	assert.Error(t, err)

	// Directories are rejected, not just missing paths.
	_, err = common.LoadInputs(t.TempDir(), log)
	assert.Error(t, err)
}

func TestRun_ValidScenario(t *testing.T) {
	cfg := testConfig(t)
	file := writeScenario(t, validScenario)

	inputs, results, violations, err := common.Run(cfg, file, logrus.New())
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, 100000.0, inputs.Personal.BaseTaxableIncome)
	assert.InDelta(t, -188.0, results.TaxImpact.AfterTaxCashflow, 1e-9)
	assert.True(t, results.RentalPL.IsNegativelyGeared)
}

func TestRun_ViolationsSkipCalculation(t *testing.T) {
	cfg := testConfig(t)
	file := writeScenario(t, `personal:
  ownership_percentage: 150
property:
  loan_term_years: 30
`)

	_, results, violations, err := common.Run(cfg, file, logrus.New())
	require.NoError(t, err)
	require.NotEmpty(t, violations)
	assert.Equal(t, "personal.ownership_percentage", violations[0].Field)
	// Nothing was calculated.
	assert.Zero(t, results.Cashflow.GrossRentalIncome)
}

func TestReportViolations(t *testing.T) {
	cfg := testConfig(t)
	file := writeScenario(t, `rental_income:
  weekly_rent: -10
property:
  loan_term_years: 30
`)

	_, _, violations, err := common.Run(cfg, file, logrus.New())
	require.NoError(t, err)
	require.NotEmpty(t, violations)

	err = common.ReportViolations(violations, logrus.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 violation(s)")
}
