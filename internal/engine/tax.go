package engine

import "fjacquet/gearcalc/internal/models"

// IncomeTax returns the flat-rate income tax at the given marginal rate.
// Negative taxable income yields zero tax; losses are not tracked or carried
// forward.
func (c *Calculator) IncomeTax(taxableIncome, marginalRate float64) float64 {
	if taxableIncome < 0 {
		return 0
	}
	return taxableIncome * marginalRate
}

// MedicareLevy mirrors IncomeTax with the levy rate.
func (c *Calculator) MedicareLevy(taxableIncome, levyRate float64) float64 {
	if taxableIncome < 0 {
		return 0
	}
	return taxableIncome * levyRate
}

// TaxScenario computes the total tax payable at a single taxable income
// level. The income itself is recorded unfloored; only the tax components
// floor negative income to zero.
func (c *Calculator) TaxScenario(taxableIncome, marginalRate, levyRate float64) models.TaxScenarioResults {
	incomeTax := c.IncomeTax(taxableIncome, marginalRate)
	levy := c.MedicareLevy(taxableIncome, levyRate)
	return models.TaxScenarioResults{
		TaxableIncome: taxableIncome,
		IncomeTax:     incomeTax,
		MedicareLevy:  levy,
		TotalTax:      incomeTax + levy,
	}
}

// RentalPL derives the taxable rental result from the cashflow and
// depreciation groups. Depreciation is deductible without being a cash
// outflow, so the rental result can be well below the cash position.
func (c *Calculator) RentalPL(cashflow models.CashflowResults, depreciation models.DepreciationResults) models.RentalPLResults {
	netRental := cashflow.NetCashflowPreTax - depreciation.TotalDepreciation
	return models.RentalPLResults{
		NetCashflowPreTax:  cashflow.NetCashflowPreTax,
		TotalDepreciation:  depreciation.TotalDepreciation,
		NetRentalResult:    netRental,
		IsNegativelyGeared: netRental < 0,
	}
}

// TaxImpact runs the two-scenario comparison: tax payable on the base income
// alone versus on the base income plus the net rental result. The combined
// income is deliberately not floored before the comparison; only each
// scenario's tax components floor internally.
//
// AfterTaxCashflow adds the tax benefit to the pre-tax cashflow, not to the
// rental result: depreciation reduces tax but never leaves the investor's
// pocket, so using the rental result here would double-count it.
func (c *Calculator) TaxImpact(baseTaxableIncome, netRentalResult, netCashflowPreTax, marginalRate, levyRate float64) models.TaxImpactResults {
	without := c.TaxScenario(baseTaxableIncome, marginalRate, levyRate)
	with := c.TaxScenario(baseTaxableIncome+netRentalResult, marginalRate, levyRate)
	taxBenefit := without.TotalTax - with.TotalTax
	return models.TaxImpactResults{
		WithoutProperty:  without,
		WithProperty:     with,
		TaxBenefit:       taxBenefit,
		AfterTaxCashflow: netCashflowPreTax + taxBenefit,
	}
}
