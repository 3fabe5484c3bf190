package models

// CashflowResults holds the annual pre-tax cashflow breakdown.
// NetCashflowPreTax is the plain algebraic sum and may be negative.
type CashflowResults struct {
	GrossRentalIncome      float64 `json:"gross_rental_income" yaml:"gross_rental_income"`
	TotalOperatingExpenses float64 `json:"total_operating_expenses" yaml:"total_operating_expenses"`
	InterestExpense        float64 `json:"interest_expense" yaml:"interest_expense"`
	NetCashflowPreTax      float64 `json:"net_cashflow_pre_tax" yaml:"net_cashflow_pre_tax"`
}

// DepreciationResults holds the annual non-cash deductions.
type DepreciationResults struct {
	CapitalWorksDeduction   float64 `json:"capital_works_deduction" yaml:"capital_works_deduction"`
	PlantEquipmentDeduction float64 `json:"plant_equipment_deduction" yaml:"plant_equipment_deduction"`
	TotalDepreciation       float64 `json:"total_depreciation" yaml:"total_depreciation"`
}

// RentalPLResults is the taxable rental profit or loss: cashflow less
// depreciation. A strictly negative NetRentalResult means the property is
// negatively geared.
type RentalPLResults struct {
	NetCashflowPreTax  float64 `json:"net_cashflow_pre_tax" yaml:"net_cashflow_pre_tax"`
	TotalDepreciation  float64 `json:"total_depreciation" yaml:"total_depreciation"`
	NetRentalResult    float64 `json:"net_rental_result" yaml:"net_rental_result"`
	IsNegativelyGeared bool    `json:"is_negatively_geared" yaml:"is_negatively_geared"`
}

// TaxScenarioResults is the tax payable at a single taxable income level.
type TaxScenarioResults struct {
	TaxableIncome float64 `json:"taxable_income" yaml:"taxable_income"`
	IncomeTax     float64 `json:"income_tax" yaml:"income_tax"`
	MedicareLevy  float64 `json:"medicare_levy" yaml:"medicare_levy"`
	TotalTax      float64 `json:"total_tax" yaml:"total_tax"`
}

// TaxImpactResults compares tax payable with and without the property.
// TaxBenefit is positive when the property reduces total tax and negative
// when it adds to it. AfterTaxCashflow is the pre-tax cashflow plus the tax
// benefit, the headline cash-in-pocket figure.
type TaxImpactResults struct {
	WithoutProperty  TaxScenarioResults `json:"without_property" yaml:"without_property"`
	WithProperty     TaxScenarioResults `json:"with_property" yaml:"with_property"`
	TaxBenefit       float64            `json:"tax_benefit" yaml:"tax_benefit"`
	AfterTaxCashflow float64            `json:"after_tax_cashflow" yaml:"after_tax_cashflow"`
}

// LoanComparisonResults compares principal-and-interest against interest-only
// repayments over the full loan term. PrincipalRemainingIO always equals the
// loan amount since interest-only repayments never amortize principal.
type LoanComparisonResults struct {
	MonthlyPI            float64 `json:"monthly_pi" yaml:"monthly_pi"`
	AnnualPI             float64 `json:"annual_pi" yaml:"annual_pi"`
	MonthlyIO            float64 `json:"monthly_io" yaml:"monthly_io"`
	AnnualIO             float64 `json:"annual_io" yaml:"annual_io"`
	MonthlySavingsIO     float64 `json:"monthly_savings_io" yaml:"monthly_savings_io"`
	TotalInterestPI      float64 `json:"total_interest_pi" yaml:"total_interest_pi"`
	TotalInterestIO      float64 `json:"total_interest_io" yaml:"total_interest_io"`
	ExtraInterestIO      float64 `json:"extra_interest_io" yaml:"extra_interest_io"`
	PrincipalRemainingIO float64 `json:"principal_remaining_io" yaml:"principal_remaining_io"`
}

// AmortizationMilestone is a snapshot of a principal-and-interest loan at the
// end of a milestone year. PrincipalPaid and InterestPaid are cumulative from
// the start of the loan; RemainingBalance is floored at zero.
type AmortizationMilestone struct {
	Year             int     `json:"year" yaml:"year"`
	PrincipalPaid    float64 `json:"principal_paid" yaml:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid" yaml:"interest_paid"`
	RemainingBalance float64 `json:"remaining_balance" yaml:"remaining_balance"`
}

// Results aggregates every result group produced by one engine invocation.
// Each invocation returns a fresh value; results are never mutated after
// creation. LoanComparison and Milestones feed the display collaborators
// only, never the tax pipeline.
type Results struct {
	Cashflow       CashflowResults         `json:"cashflow" yaml:"cashflow"`
	Depreciation   DepreciationResults     `json:"depreciation" yaml:"depreciation"`
	RentalPL       RentalPLResults         `json:"rental_pl" yaml:"rental_pl"`
	TaxImpact      TaxImpactResults        `json:"tax_impact" yaml:"tax_impact"`
	LoanComparison LoanComparisonResults   `json:"loan_comparison" yaml:"loan_comparison"`
	Milestones     []AmortizationMilestone `json:"milestones" yaml:"milestones"`
}
