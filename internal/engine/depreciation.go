package engine

import "fjacquet/gearcalc/internal/models"

// CapitalWorksDeduction returns the annual Division 43 deduction: a fixed
// percentage of the construction value, scaled by ownership.
func (c *Calculator) CapitalWorksDeduction(constructionValue, ownership float64) float64 {
	return constructionValue * c.rates.CapitalWorksRate * ownership
}

// PlantEquipmentDeduction returns the annual Division 40 deduction. The
// annual estimate is taken as given; there is no per-asset schedule,
// diminishing-value or prime-cost method.
func (c *Calculator) PlantEquipmentDeduction(annualEstimate, ownership float64) float64 {
	return annualEstimate * ownership
}

// Depreciation composes the depreciation calculators over one input snapshot.
func (c *Calculator) Depreciation(in models.CalculatorInputs) models.DepreciationResults {
	ownership := in.Personal.OwnershipFraction()
	capitalWorks := c.CapitalWorksDeduction(in.Depreciation.ConstructionValue, ownership)
	plant := c.PlantEquipmentDeduction(in.Depreciation.PlantEquipmentAnnual, ownership)
	return models.DepreciationResults{
		CapitalWorksDeduction:   capitalWorks,
		PlantEquipmentDeduction: plant,
		TotalDepreciation:       capitalWorks + plant,
	}
}
