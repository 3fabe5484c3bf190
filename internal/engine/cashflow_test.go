package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/gearcalc/internal/models"
)

func TestGrossRent(t *testing.T) {
	calc := NewDefault()

	assert.Equal(t, 27500.0, calc.GrossRent(550, 2, 1.0))
	assert.Equal(t, 28600.0, calc.GrossRent(550, 0, 1.0))
	assert.Equal(t, 13750.0, calc.GrossRent(550, 2, 0.5))
	assert.Equal(t, 0.0, calc.GrossRent(0, 2, 1.0))
	// Fully vacant year
	assert.Equal(t, 0.0, calc.GrossRent(550, 52, 1.0))
}

func TestInterestExpense(t *testing.T) {
	calc := NewDefault()

	assert.Equal(t, 28800.0, calc.InterestExpense(480000, 0.06, 1.0))
	assert.Equal(t, 14400.0, calc.InterestExpense(480000, 0.06, 0.5))
	assert.Equal(t, 0.0, calc.InterestExpense(0, 0.06, 1.0))
	assert.Equal(t, 0.0, calc.InterestExpense(480000, 0, 1.0))
}

func TestOperatingExpenses(t *testing.T) {
	calc := NewDefault()
	expenses := models.OperatingExpensesInputs{
		CouncilRates:       2000,
		WaterRates:         900,
		Insurance:          1400,
		PropertyManagement: 1800,
		RepairsMaintenance: 500,
		StrataFees:         300,
		Other:              100,
	}

	assert.Equal(t, 7000.0, calc.OperatingExpenses(expenses, 1.0))
	assert.Equal(t, 3500.0, calc.OperatingExpenses(expenses, 0.5))
	assert.Equal(t, 0.0, calc.OperatingExpenses(models.OperatingExpensesInputs{}, 1.0))
}

func TestNetCashflowPreTax(t *testing.T) {
	calc := NewDefault()

	assert.Equal(t, -8300.0, calc.NetCashflowPreTax(27500, 7000, 28800))
	assert.Equal(t, 5000.0, calc.NetCashflowPreTax(30000, 10000, 15000))
	assert.Equal(t, 0.0, calc.NetCashflowPreTax(0, 0, 0))
}

func TestCashflow_Aggregate(t *testing.T) {
	calc := NewDefault()
	in := models.CalculatorInputs{
		Personal: models.PersonalInputs{OwnershipPercentage: 100},
		Property: models.PropertyPurchaseInputs{
			LoanAmount:   480000,
			InterestRate: 0.06,
		},
		RentalIncome: models.RentalIncomeInputs{WeeklyRent: 550, VacancyWeeksPerYear: 2},
		OperatingExpenses: models.OperatingExpensesInputs{
			CouncilRates:       2000,
			WaterRates:         900,
			Insurance:          1400,
			PropertyManagement: 1800,
			RepairsMaintenance: 500,
			StrataFees:         300,
			Other:              100,
		},
	}

	got := calc.Cashflow(in)
	assert.Equal(t, 27500.0, got.GrossRentalIncome)
	assert.Equal(t, 7000.0, got.TotalOperatingExpenses)
	assert.Equal(t, 28800.0, got.InterestExpense)
	assert.Equal(t, -8300.0, got.NetCashflowPreTax)
}

func TestCashflow_OwnershipScalingLinearity(t *testing.T) {
	calc := NewDefault()
	expenses := models.OperatingExpensesInputs{CouncilRates: 2000, Insurance: 1400, Other: 600}

	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		assert.InDelta(t, p*calc.GrossRent(550, 2, 1.0), calc.GrossRent(550, 2, p), 1e-9)
		assert.InDelta(t, p*calc.InterestExpense(480000, 0.06, 1.0), calc.InterestExpense(480000, 0.06, p), 1e-9)
		assert.InDelta(t, p*calc.OperatingExpenses(expenses, 1.0), calc.OperatingExpenses(expenses, p), 1e-9)
	}
}
