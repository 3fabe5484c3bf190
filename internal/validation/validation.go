// Package validation is the gate between raw user input and the calculation
// engine. The engine performs unchecked arithmetic; every range constraint
// lives here so the calculators stay composable and testable in isolation.
package validation

import (
	"fmt"
	"math"
	"os"

	"fjacquet/gearcalc/internal/models"
)

// Violation reports a single out-of-range field.
type Violation struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Bounds holds the acceptable input ranges. DefaultBounds matches the
// standard Australian figures; config may override individual limits.
type Bounds struct {
	MaxWeeklyRent      float64 `mapstructure:"max_weekly_rent" yaml:"max_weekly_rent"`
	MaxVacancyWeeks    float64 `mapstructure:"max_vacancy_weeks" yaml:"max_vacancy_weeks"`
	MaxInterestRate    float64 `mapstructure:"max_interest_rate" yaml:"max_interest_rate"`
	MinLoanTermYears   int     `mapstructure:"min_loan_term_years" yaml:"min_loan_term_years"`
	MaxLoanTermYears   int     `mapstructure:"max_loan_term_years" yaml:"max_loan_term_years"`
	MaxMarginalTaxRate float64 `mapstructure:"max_marginal_tax_rate" yaml:"max_marginal_tax_rate"`
	MaxMedicareLevy    float64 `mapstructure:"max_medicare_levy" yaml:"max_medicare_levy"`
}

// DefaultBounds returns the standard validation limits.
func DefaultBounds() Bounds {
	return Bounds{
		MaxWeeklyRent:      10000,
		MaxVacancyWeeks:    52,
		MaxInterestRate:    0.25,
		MinLoanTermYears:   1,
		MaxLoanTermYears:   40,
		MaxMarginalTaxRate: 0.47,
		MaxMedicareLevy:    0.035,
	}
}

// Validate checks every input group against the bounds and returns the full
// list of violations, empty when the inputs are acceptable. Non-finite
// values are rejected here because the engine will propagate them silently.
func Validate(in models.CalculatorInputs, bounds Bounds) []Violation {
	var violations []Violation

	add := func(field, format string, args ...interface{}) {
		violations = append(violations, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	checkFinite := func(field string, value float64) bool {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			add(field, "must be a finite number")
			return false
		}
		return true
	}

	p := in.Personal
	if checkFinite("personal.base_taxable_income", p.BaseTaxableIncome) && p.BaseTaxableIncome < 0 {
		add("personal.base_taxable_income", "must not be negative")
	}
	if checkFinite("personal.ownership_percentage", p.OwnershipPercentage) &&
		(p.OwnershipPercentage < 0 || p.OwnershipPercentage > 100) {
		add("personal.ownership_percentage", "must be between 0 and 100")
	}
	if checkFinite("personal.marginal_tax_rate", p.MarginalTaxRate) &&
		(p.MarginalTaxRate < 0 || p.MarginalTaxRate > bounds.MaxMarginalTaxRate) {
		add("personal.marginal_tax_rate", "must be between 0 and %.2f", bounds.MaxMarginalTaxRate)
	}
	if checkFinite("personal.medicare_levy_rate", p.MedicareLevyRate) &&
		(p.MedicareLevyRate < 0 || p.MedicareLevyRate > bounds.MaxMedicareLevy) {
		add("personal.medicare_levy_rate", "must be between 0 and %.3f", bounds.MaxMedicareLevy)
	}

	prop := in.Property
	if checkFinite("property.purchase_price", prop.PurchasePrice) && prop.PurchasePrice < 0 {
		add("property.purchase_price", "must not be negative")
	}
	if checkFinite("property.loan_amount", prop.LoanAmount) && prop.LoanAmount < 0 {
		add("property.loan_amount", "must not be negative")
	}
	if checkFinite("property.interest_rate", prop.InterestRate) &&
		(prop.InterestRate < 0 || prop.InterestRate > bounds.MaxInterestRate) {
		add("property.interest_rate", "must be between 0 and %.2f", bounds.MaxInterestRate)
	}
	if prop.LoanTermYears < bounds.MinLoanTermYears || prop.LoanTermYears > bounds.MaxLoanTermYears {
		add("property.loan_term_years", "must be between %d and %d", bounds.MinLoanTermYears, bounds.MaxLoanTermYears)
	}

	rent := in.RentalIncome
	if checkFinite("rental_income.weekly_rent", rent.WeeklyRent) &&
		(rent.WeeklyRent < 0 || rent.WeeklyRent > bounds.MaxWeeklyRent) {
		add("rental_income.weekly_rent", "must be between 0 and %.0f", bounds.MaxWeeklyRent)
	}
	if checkFinite("rental_income.vacancy_weeks_per_year", rent.VacancyWeeksPerYear) &&
		(rent.VacancyWeeksPerYear < 0 || rent.VacancyWeeksPerYear > bounds.MaxVacancyWeeks) {
		add("rental_income.vacancy_weeks_per_year", "must be between 0 and %.0f", bounds.MaxVacancyWeeks)
	}

	expenses := map[string]float64{
		"operating_expenses.council_rates":       in.OperatingExpenses.CouncilRates,
		"operating_expenses.water_rates":         in.OperatingExpenses.WaterRates,
		"operating_expenses.insurance":           in.OperatingExpenses.Insurance,
		"operating_expenses.property_management": in.OperatingExpenses.PropertyManagement,
		"operating_expenses.repairs_maintenance": in.OperatingExpenses.RepairsMaintenance,
		"operating_expenses.strata_fees":         in.OperatingExpenses.StrataFees,
		"operating_expenses.other":               in.OperatingExpenses.Other,
	}
	for _, field := range []string{
		"operating_expenses.council_rates",
		"operating_expenses.water_rates",
		"operating_expenses.insurance",
		"operating_expenses.property_management",
		"operating_expenses.repairs_maintenance",
		"operating_expenses.strata_fees",
		"operating_expenses.other",
	} {
		if checkFinite(field, expenses[field]) && expenses[field] < 0 {
			add(field, "must not be negative")
		}
	}

	dep := in.Depreciation
	if checkFinite("depreciation.construction_value", dep.ConstructionValue) && dep.ConstructionValue < 0 {
		add("depreciation.construction_value", "must not be negative")
	}
	if checkFinite("depreciation.plant_equipment_annual", dep.PlantEquipmentAnnual) && dep.PlantEquipmentAnnual < 0 {
		add("depreciation.plant_equipment_annual", "must not be negative")
	}

	return violations
}

// ValidateLoan checks standalone loan parameters against the bounds. The
// loan command takes these from flags rather than a scenario file, so they
// pass through the same gate before reaching the calculators.
func ValidateLoan(amount, rate float64, termYears int, bounds Bounds) []Violation {
	var violations []Violation

	add := func(field, format string, args ...interface{}) {
		violations = append(violations, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	checkFinite := func(field string, value float64) bool {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			add(field, "must be a finite number")
			return false
		}
		return true
	}

	if checkFinite("loan.amount", amount) && amount <= 0 {
		add("loan.amount", "must be positive")
	}
	if checkFinite("loan.rate", rate) && (rate < 0 || rate > bounds.MaxInterestRate) {
		add("loan.rate", "must be between 0 and %.2f", bounds.MaxInterestRate)
	}
	if termYears < bounds.MinLoanTermYears || termYears > bounds.MaxLoanTermYears {
		add("loan.term_years", "must be between %d and %d", bounds.MinLoanTermYears, bounds.MaxLoanTermYears)
	}

	return violations
}

// IsValidPath checks that a given path exists and is a regular file.
// Used by the CLI before handing scenario files to the decoder.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}
