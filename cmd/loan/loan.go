// Package loan compares P&I and interest-only repayments for a loan
package loan

import (
	"fmt"

	"fjacquet/gearcalc/cmd/common"
	"fjacquet/gearcalc/cmd/root"
	"fjacquet/gearcalc/internal/currencyutils"
	"fjacquet/gearcalc/internal/engine"
	"fjacquet/gearcalc/internal/validation"

	"github.com/spf13/cobra"
)

var (
	amountFlag string
	rate       float64
	termYears  int
)

// Cmd represents the loan command
var Cmd = &cobra.Command{
	Use:   "loan",
	Short: "Compare P&I and interest-only repayments for a loan",
	Long: `Loan computes principal-and-interest versus interest-only repayments,
lifetime interest for both, and an amortization milestone schedule. It works
from flags alone and does not need a scenario file.`,
	Run: loanFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "Loan amount, e.g. 480000 or $480,000")
	Cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Annual interest rate as a decimal (e.g. 0.06)")
	Cmd.Flags().IntVarP(&termYears, "term", "t", 30, "Loan term in years")
}

// parseLoanFlags turns the raw flag values into a validated loan amount.
// Flag values bypass the scenario-file gate, so the same bounds are applied
// here before anything reaches the calculators.
func parseLoanFlags(bounds validation.Bounds) (float64, []validation.Violation, error) {
	amount, err := currencyutils.ParseAmount(amountFlag)
	if err != nil {
		return 0, nil, err
	}
	return amount, validation.ValidateLoan(amount, rate, termYears, bounds), nil
}

func loanFunc(cmd *cobra.Command, args []string) {
	amount, violations, err := parseLoanFlags(root.AppConfig.Bounds)
	if err != nil {
		root.Log.Fatalf("Error reading loan flags: %v", err)
	}
	if len(violations) > 0 {
		root.Log.Fatalf("%v", common.ReportViolations(violations, root.Log))
	}

	calc := engine.New(root.AppConfig.EngineRates())
	comparison := calc.LoanComparison(amount, rate, termYears)
	milestones := calc.AmortizationMilestones(amount, rate, termYears)

	aud := currencyutils.FormatAUD

	fmt.Printf("Loan %s at %s over %d years\n\n", aud(amount), currencyutils.FormatRate(rate), termYears)
	fmt.Println("Repayments")
	fmt.Printf("  P&I monthly              %s\n", aud(comparison.MonthlyPI))
	fmt.Printf("  Interest-only monthly    %s\n", aud(comparison.MonthlyIO))
	fmt.Printf("  Monthly saving on IO     %s\n", aud(comparison.MonthlySavingsIO))
	fmt.Println()
	fmt.Println("Lifetime interest")
	fmt.Printf("  P&I                      %s\n", aud(comparison.TotalInterestPI))
	fmt.Printf("  Interest-only            %s\n", aud(comparison.TotalInterestIO))
	fmt.Printf("  Extra cost of IO         %s\n", aud(comparison.ExtraInterestIO))
	fmt.Println()

	if len(milestones) > 0 {
		fmt.Println("P&I amortization milestones")
		fmt.Printf("  %-6s %-16s %-16s %s\n", "Year", "Principal paid", "Interest paid", "Balance")
		for _, m := range milestones {
			fmt.Printf("  %-6d %-16s %-16s %s\n",
				m.Year, aud(m.PrincipalPaid), aud(m.InterestPaid), aud(m.RemainingBalance))
		}
	}
}
