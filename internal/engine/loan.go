package engine

import (
	"math"

	"fjacquet/gearcalc/internal/models"
)

// MonthlyPIRepayment returns the fixed monthly principal-and-interest
// repayment using the standard annuity formula P*r(1+r)^n/((1+r)^n - 1).
// A non-positive amount or term yields 0; a non-positive rate falls back to a
// straight-line split of the principal, avoiding division by zero.
func (c *Calculator) MonthlyPIRepayment(loanAmount, annualRate float64, termYears int) float64 {
	if loanAmount <= 0 || termYears <= 0 {
		return 0
	}
	months := float64(termYears * 12)
	if annualRate <= 0 {
		return loanAmount / months
	}
	monthlyRate := annualRate / 12
	factor := math.Pow(1+monthlyRate, months)
	return loanAmount * monthlyRate * factor / (factor - 1)
}

// MonthlyIORepayment returns the fixed monthly interest-only repayment.
func (c *Calculator) MonthlyIORepayment(loanAmount, annualRate float64) float64 {
	if loanAmount <= 0 || annualRate <= 0 {
		return 0
	}
	return loanAmount * annualRate / 12
}

// TotalInterestPI is the lifetime interest under principal-and-interest
// repayments: everything paid beyond the principal.
func (c *Calculator) TotalInterestPI(loanAmount, annualRate float64, termYears int) float64 {
	monthly := c.MonthlyPIRepayment(loanAmount, annualRate, termYears)
	if monthly == 0 {
		return 0
	}
	return monthly*float64(termYears*12) - loanAmount
}

// TotalInterestIO is the lifetime interest under interest-only repayments,
// linear in the term since the principal never reduces.
func (c *Calculator) TotalInterestIO(loanAmount, annualRate float64, termYears int) float64 {
	if loanAmount <= 0 || annualRate <= 0 || termYears <= 0 {
		return 0
	}
	return loanAmount * annualRate * float64(termYears)
}

// LoanComparison compares P&I and interest-only repayments over the full
// term. ExtraInterestIO is non-negative for any positive rate and term.
func (c *Calculator) LoanComparison(loanAmount, annualRate float64, termYears int) models.LoanComparisonResults {
	monthlyPI := c.MonthlyPIRepayment(loanAmount, annualRate, termYears)
	monthlyIO := c.MonthlyIORepayment(loanAmount, annualRate)
	totalPI := c.TotalInterestPI(loanAmount, annualRate, termYears)
	totalIO := c.TotalInterestIO(loanAmount, annualRate, termYears)
	principalRemaining := 0.0
	if loanAmount > 0 {
		principalRemaining = loanAmount
	}
	return models.LoanComparisonResults{
		MonthlyPI:            monthlyPI,
		AnnualPI:             monthlyPI * 12,
		MonthlyIO:            monthlyIO,
		AnnualIO:             monthlyIO * 12,
		MonthlySavingsIO:     monthlyPI - monthlyIO,
		TotalInterestPI:      totalPI,
		TotalInterestIO:      totalIO,
		ExtraInterestIO:      totalIO - totalPI,
		PrincipalRemainingIO: principalRemaining,
	}
}

// AmortizationMilestones walks the P&I schedule month by month and snapshots
// the cumulative position at each milestone year within the term. Every
// month is processed in sequence; interest accrues on the declining balance,
// so skipping ahead would corrupt the running totals. The remaining balance
// in each snapshot is floored at zero to absorb the final payment's rounding.
func (c *Calculator) AmortizationMilestones(loanAmount, annualRate float64, termYears int) []models.AmortizationMilestone {
	if loanAmount <= 0 || termYears <= 0 {
		return nil
	}

	years := make([]int, 0, len(c.rates.MilestoneYears))
	for _, y := range c.rates.MilestoneYears {
		if y <= termYears {
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return nil
	}

	payment := c.MonthlyPIRepayment(loanAmount, annualRate, termYears)
	monthlyRate := 0.0
	if annualRate > 0 {
		monthlyRate = annualRate / 12
	}

	milestones := make([]models.AmortizationMilestone, 0, len(years))
	balance := loanAmount
	principalPaid := 0.0
	interestPaid := 0.0
	next := 0
	lastMonth := years[len(years)-1] * 12

	for month := 1; month <= lastMonth; month++ {
		interest := balance * monthlyRate
		principal := payment - interest
		balance -= principal
		principalPaid += principal
		interestPaid += interest

		if month == years[next]*12 {
			milestones = append(milestones, models.AmortizationMilestone{
				Year:             years[next],
				PrincipalPaid:    principalPaid,
				InterestPaid:     interestPaid,
				RemainingBalance: math.Max(0, balance),
			})
			next++
			if next == len(years) {
				break
			}
		}
	}
	return milestones
}
