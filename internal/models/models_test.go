package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnershipFraction(t *testing.T) {
	assert.Equal(t, 1.0, PersonalInputs{OwnershipPercentage: 100}.OwnershipFraction())
	assert.Equal(t, 0.5, PersonalInputs{OwnershipPercentage: 50}.OwnershipFraction())
	assert.Equal(t, 0.0, PersonalInputs{}.OwnershipFraction())
}

func TestLVR(t *testing.T) {
	p := PropertyPurchaseInputs{PurchasePrice: 600000, LoanAmount: 480000}
	assert.Equal(t, 0.8, p.LVR())

	// Zero purchase price guards the division.
	assert.Equal(t, 0.0, PropertyPurchaseInputs{LoanAmount: 480000}.LVR())
}

func TestOperatingExpensesTotal(t *testing.T) {
	e := OperatingExpensesInputs{
		CouncilRates:       2000,
		WaterRates:         900,
		Insurance:          1400,
		PropertyManagement: 1800,
		RepairsMaintenance: 500,
		StrataFees:         300,
		Other:              100,
	}
	assert.Equal(t, 7000.0, e.Total())
	assert.Equal(t, 0.0, OperatingExpensesInputs{}.Total())
}

func TestNewScenario(t *testing.T) {
	inputs := CalculatorInputs{RentalIncome: RentalIncomeInputs{WeeklyRent: 550}}

	s := NewScenario("base case", inputs)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "base case", s.Name)
	assert.Equal(t, inputs, s.Inputs)
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)

	// Distinct scenarios get distinct ids.
	assert.NotEqual(t, s.ID, NewScenario("other", inputs).ID)
}

func TestScenarioTouch(t *testing.T) {
	s := NewScenario("base case", CalculatorInputs{})
	created := s.CreatedAt

	s.Touch()
	assert.Equal(t, created, s.CreatedAt)
	assert.False(t, s.UpdatedAt.Before(created))
}
