package engine

import "fjacquet/gearcalc/internal/models"

// Calculate runs the full pipeline over one immutable input snapshot:
// cashflow, then depreciation, then rental P&L, then the tax-impact
// comparison, with the loan comparison and milestone schedule computed
// alongside for the display collaborators. The whole pass is synchronous and
// side-effect free; identical inputs produce bit-identical results.
func (c *Calculator) Calculate(in models.CalculatorInputs) models.Results {
	cashflow := c.Cashflow(in)
	depreciation := c.Depreciation(in)
	rentalPL := c.RentalPL(cashflow, depreciation)

	levyRate := in.Personal.MedicareLevyRate
	taxImpact := c.TaxImpact(
		in.Personal.BaseTaxableIncome,
		rentalPL.NetRentalResult,
		cashflow.NetCashflowPreTax,
		in.Personal.MarginalTaxRate,
		levyRate,
	)

	return models.Results{
		Cashflow:       cashflow,
		Depreciation:   depreciation,
		RentalPL:       rentalPL,
		TaxImpact:      taxImpact,
		LoanComparison: c.LoanComparison(in.Property.LoanAmount, in.Property.InterestRate, in.Property.LoanTermYears),
		Milestones:     c.AmortizationMilestones(in.Property.LoanAmount, in.Property.InterestRate, in.Property.LoanTermYears),
	}
}
