// Package models defines the input and result structures exchanged between
// the calculation engine, the validation gate, the scenario store and the
// export surfaces. All monetary figures are plain float64 currency units;
// rates are decimals in [0,1] unless noted.
package models

// PersonalInputs describes the investor's own tax position.
type PersonalInputs struct {
	BaseTaxableIncome   float64 `json:"base_taxable_income" yaml:"base_taxable_income"`
	OwnershipPercentage float64 `json:"ownership_percentage" yaml:"ownership_percentage"` // 0-100
	MarginalTaxRate     float64 `json:"marginal_tax_rate" yaml:"marginal_tax_rate"`
	MedicareLevyRate    float64 `json:"medicare_levy_rate" yaml:"medicare_levy_rate"`
}

// OwnershipFraction converts the stored 0-100 percentage into the 0-1
// fraction consumed by the calculators.
func (p PersonalInputs) OwnershipFraction() float64 {
	return p.OwnershipPercentage / 100
}

// PropertyPurchaseInputs describes the purchase and loan terms.
// SettlementDate is carried for scenario round-trips but not consumed by any
// calculator yet.
type PropertyPurchaseInputs struct {
	PurchasePrice  float64 `json:"purchase_price" yaml:"purchase_price"`
	LoanAmount     float64 `json:"loan_amount" yaml:"loan_amount"`
	InterestRate   float64 `json:"interest_rate" yaml:"interest_rate"`
	LoanTermYears  int     `json:"loan_term_years" yaml:"loan_term_years"`
	IsInterestOnly bool    `json:"is_interest_only" yaml:"is_interest_only"`
	SettlementDate string  `json:"settlement_date,omitempty" yaml:"settlement_date,omitempty"`
}

// LVR returns the loan-to-value ratio, or 0 when the purchase price is zero.
func (p PropertyPurchaseInputs) LVR() float64 {
	if p.PurchasePrice == 0 {
		return 0
	}
	return p.LoanAmount / p.PurchasePrice
}

// RentalIncomeInputs describes expected rental income.
type RentalIncomeInputs struct {
	WeeklyRent          float64 `json:"weekly_rent" yaml:"weekly_rent"`
	VacancyWeeksPerYear float64 `json:"vacancy_weeks_per_year" yaml:"vacancy_weeks_per_year"`
}

// OperatingExpensesInputs holds the seven annual expense line items.
type OperatingExpensesInputs struct {
	CouncilRates       float64 `json:"council_rates" yaml:"council_rates"`
	WaterRates         float64 `json:"water_rates" yaml:"water_rates"`
	Insurance          float64 `json:"insurance" yaml:"insurance"`
	PropertyManagement float64 `json:"property_management" yaml:"property_management"`
	RepairsMaintenance float64 `json:"repairs_maintenance" yaml:"repairs_maintenance"`
	StrataFees         float64 `json:"strata_fees" yaml:"strata_fees"`
	Other              float64 `json:"other" yaml:"other"`
	OtherDescription   string  `json:"other_description,omitempty" yaml:"other_description,omitempty"`
}

// Total returns the unscaled sum of all seven expense line items.
func (e OperatingExpensesInputs) Total() float64 {
	return e.CouncilRates + e.WaterRates + e.Insurance + e.PropertyManagement +
		e.RepairsMaintenance + e.StrataFees + e.Other
}

// DepreciationInputs holds the annual depreciation estimates.
type DepreciationInputs struct {
	ConstructionValue    float64 `json:"construction_value" yaml:"construction_value"`
	PlantEquipmentAnnual float64 `json:"plant_equipment_annual" yaml:"plant_equipment_annual"`
}

// CalculatorInputs aggregates the five input groups into the single structure
// the engine consumes. The engine assumes the values have already passed the
// validation gate; it performs no bounds checking of its own.
type CalculatorInputs struct {
	Personal          PersonalInputs          `json:"personal" yaml:"personal"`
	Property          PropertyPurchaseInputs  `json:"property" yaml:"property"`
	RentalIncome      RentalIncomeInputs      `json:"rental_income" yaml:"rental_income"`
	OperatingExpenses OperatingExpensesInputs `json:"operating_expenses" yaml:"operating_expenses"`
	Depreciation      DepreciationInputs      `json:"depreciation" yaml:"depreciation"`
}
