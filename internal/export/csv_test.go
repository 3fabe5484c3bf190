package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/gearcalc/internal/engine"
	"fjacquet/gearcalc/internal/models"
)

func reportFixture() (models.CalculatorInputs, models.Results) {
	inputs := models.CalculatorInputs{
		Personal: models.PersonalInputs{
			BaseTaxableIncome:   100000,
			OwnershipPercentage: 100,
			MarginalTaxRate:     0.37,
			MedicareLevyRate:    0.02,
		},
		Property: models.PropertyPurchaseInputs{
			PurchasePrice: 600000,
			LoanAmount:    480000,
			InterestRate:  0.06,
			LoanTermYears: 30,
		},
		RentalIncome: models.RentalIncomeInputs{WeeklyRent: 550, VacancyWeeksPerYear: 2},
		OperatingExpenses: models.OperatingExpensesInputs{
			CouncilRates: 2000, WaterRates: 900, Insurance: 1400,
			PropertyManagement: 1800, RepairsMaintenance: 500, StrataFees: 300, Other: 100,
		},
		Depreciation: models.DepreciationInputs{ConstructionValue: 300000, PlantEquipmentAnnual: 5000},
	}
	return inputs, engine.NewDefault().Calculate(inputs)
}

func TestBuildRows_StableOrderAndValues(t *testing.T) {
	inputs, results := reportFixture()

	rows := BuildRows(inputs, results)
	require.NotEmpty(t, rows)

	// Input groups first, results after, milestones last.
	assert.Equal(t, ReportRow{Section: "personal", Field: "base_taxable_income", Value: "100000.00"}, rows[0])
	assert.Equal(t, "milestone_year_30", rows[len(rows)-1].Section)

	byKey := map[string]string{}
	for _, r := range rows {
		byKey[r.Section+"/"+r.Field] = r.Value
	}
	assert.Equal(t, "27500.00", byKey["cashflow/gross_rental_income"])
	assert.Equal(t, "-8300.00", byKey["cashflow/net_cashflow_pre_tax"])
	assert.Equal(t, "12500.00", byKey["depreciation/total_depreciation"])
	assert.Equal(t, "-20800.00", byKey["rental_pl/net_rental_result"])
	assert.Equal(t, "true", byKey["rental_pl/is_negatively_geared"])
	assert.Equal(t, "8112.00", byKey["tax_impact/tax_benefit"])
	assert.Equal(t, "-188.00", byKey["tax_impact/after_tax_cashflow"])
	assert.Equal(t, "80.00%", byKey["property/lvr"])
	assert.Equal(t, "480000.00", byKey["loan_comparison/principal_remaining_io"])
}

func TestBuildRows_Deterministic(t *testing.T) {
	inputs, results := reportFixture()

	assert.Equal(t, BuildRows(inputs, results), BuildRows(inputs, results))
}

func TestWriteReportCSV(t *testing.T) {
	inputs, results := reportFixture()
	file := filepath.Join(t.TempDir(), "out", "report.csv")

	require.NoError(t, WriteReportCSV(inputs, results, file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	content := string(data)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	assert.Equal(t, "section,field,value", lines[0])
	assert.Equal(t, len(BuildRows(inputs, results))+1, len(lines))
	assert.Contains(t, content, "tax_impact,tax_benefit,8112.00")
}

func TestWriteReportCSV_CustomDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	inputs, results := reportFixture()
	file := filepath.Join(t.TempDir(), "report.csv")

	require.NoError(t, WriteReportCSV(inputs, results, file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "section;field;value")
}
