package engine

import "fjacquet/gearcalc/internal/models"

// GrossRent returns the annual rent collected after vacancy, scaled by the
// ownership fraction. Vacancy weeks above the weeks-per-year constant are not
// clamped here; the validation gate constrains them upstream.
func (c *Calculator) GrossRent(weeklyRent, vacancyWeeks, ownership float64) float64 {
	return (c.rates.WeeksPerYear - vacancyWeeks) * weeklyRent * ownership
}

// InterestExpense returns the annual interest cost as a flat approximation:
// loan balance times annual rate, with no monthly compounding or
// amortization feedback.
func (c *Calculator) InterestExpense(loanAmount, annualRate, ownership float64) float64 {
	return loanAmount * annualRate * ownership
}

// OperatingExpenses returns the sum of the seven expense line items scaled by
// the ownership fraction.
func (c *Calculator) OperatingExpenses(expenses models.OperatingExpensesInputs, ownership float64) float64 {
	return expenses.Total() * ownership
}

// NetCashflowPreTax is the algebraic annual cashflow before tax. It may be
// negative and is never floored.
func (c *Calculator) NetCashflowPreTax(grossRent, operatingExpenses, interestExpense float64) float64 {
	return grossRent - operatingExpenses - interestExpense
}

// Cashflow composes the cashflow calculators over one input snapshot.
func (c *Calculator) Cashflow(in models.CalculatorInputs) models.CashflowResults {
	ownership := in.Personal.OwnershipFraction()
	gross := c.GrossRent(in.RentalIncome.WeeklyRent, in.RentalIncome.VacancyWeeksPerYear, ownership)
	opex := c.OperatingExpenses(in.OperatingExpenses, ownership)
	interest := c.InterestExpense(in.Property.LoanAmount, in.Property.InterestRate, ownership)
	return models.CashflowResults{
		GrossRentalIncome:      gross,
		TotalOperatingExpenses: opex,
		InterestExpense:        interest,
		NetCashflowPreTax:      c.NetCashflowPreTax(gross, opex, interest),
	}
}
