// Package engine implements the calculation core: pure, deterministic
// arithmetic over pre-validated inputs. The calculators perform no bounds
// checking and no NaN guarding (outside the loan calculator's degenerate
// branches); the validation package is the gate that keeps bad values out.
package engine

// Rates is the immutable rate table consumed by a Calculator. Keeping the
// fixed rates in an explicit structure, rather than package-level state,
// allows alternate tables (future tax years) to be tested side by side.
type Rates struct {
	// WeeksPerYear is the number of rentable weeks in a year.
	WeeksPerYear float64
	// CapitalWorksRate is the Division 43 capital works rate (2.5%/year of
	// construction value).
	CapitalWorksRate float64
	// DefaultMedicareLevyRate is the Medicare levy applied when the inputs
	// do not specify one.
	DefaultMedicareLevyRate float64
	// MilestoneYears are the loan years snapshotted by the amortization
	// schedule, ascending. Years beyond the loan term are skipped.
	MilestoneYears []int
}

// DefaultRates returns the standard Australian rate table.
func DefaultRates() Rates {
	return Rates{
		WeeksPerYear:            52,
		CapitalWorksRate:        0.025,
		DefaultMedicareLevyRate: 0.02,
		MilestoneYears:          []int{1, 5, 10, 15, 20, 25, 30},
	}
}

// Calculator exposes the calculation operations over a fixed rate table.
// It is stateless apart from the rates and safe to share.
type Calculator struct {
	rates Rates
}

// New creates a Calculator using the given rate table.
func New(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// NewDefault creates a Calculator using DefaultRates.
func NewDefault() *Calculator {
	return New(DefaultRates())
}

// Rates returns the rate table the calculator was built with.
func (c *Calculator) Rates() Rates {
	return c.rates
}
