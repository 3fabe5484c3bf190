package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/gearcalc/internal/models"
)

func TestCapitalWorksDeduction(t *testing.T) {
	calc := NewDefault()

	assert.Equal(t, 7500.0, calc.CapitalWorksDeduction(300000, 1.0))
	assert.Equal(t, 3750.0, calc.CapitalWorksDeduction(300000, 0.5))
	assert.Equal(t, 0.0, calc.CapitalWorksDeduction(0, 1.0))
}

func TestCapitalWorksDeduction_AlternateRateTable(t *testing.T) {
	rates := DefaultRates()
	rates.CapitalWorksRate = 0.04
	calc := New(rates)

	assert.Equal(t, 12000.0, calc.CapitalWorksDeduction(300000, 1.0))
}

func TestPlantEquipmentDeduction(t *testing.T) {
	calc := NewDefault()

	assert.Equal(t, 5000.0, calc.PlantEquipmentDeduction(5000, 1.0))
	assert.Equal(t, 2500.0, calc.PlantEquipmentDeduction(5000, 0.5))
}

func TestDepreciation_Aggregate(t *testing.T) {
	calc := NewDefault()
	in := models.CalculatorInputs{
		Personal: models.PersonalInputs{OwnershipPercentage: 100},
		Depreciation: models.DepreciationInputs{
			ConstructionValue:    300000,
			PlantEquipmentAnnual: 5000,
		},
	}

	got := calc.Depreciation(in)
	assert.Equal(t, 7500.0, got.CapitalWorksDeduction)
	assert.Equal(t, 5000.0, got.PlantEquipmentDeduction)
	assert.Equal(t, 12500.0, got.TotalDepreciation)

	// Non-negative inputs give non-negative components.
	assert.GreaterOrEqual(t, got.CapitalWorksDeduction, 0.0)
	assert.GreaterOrEqual(t, got.PlantEquipmentDeduction, 0.0)
}

func TestDepreciation_OwnershipScalingLinearity(t *testing.T) {
	calc := NewDefault()

	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		assert.InDelta(t, p*calc.CapitalWorksDeduction(300000, 1.0), calc.CapitalWorksDeduction(300000, p), 1e-9)
		assert.InDelta(t, p*calc.PlantEquipmentDeduction(5000, 1.0), calc.PlantEquipmentDeduction(5000, p), 1e-9)
	}
}
