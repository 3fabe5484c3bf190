// Package calc runs the full calculation pipeline over a scenario file
package calc

import (
	"fmt"

	"fjacquet/gearcalc/cmd/common"
	"fjacquet/gearcalc/cmd/root"
	"fjacquet/gearcalc/internal/currencyutils"
	"fjacquet/gearcalc/internal/export"
	"fjacquet/gearcalc/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the calc command
var Cmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate cashflow, depreciation and tax impact for a scenario",
	Long: `Calculate reads a scenario input file, validates it, runs the calculation
pipeline (cashflow, depreciation, rental P&L, tax impact, loan comparison)
and prints the results. With --output the full report is also written as CSV.`,
	Run: calcFunc,
}

func calcFunc(cmd *cobra.Command, args []string) {
	inputs, results, violations, err := common.Run(root.AppConfig, root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.Fatalf("Error running calculation: %v", err)
	}
	if len(violations) > 0 {
		root.Log.Fatalf("%v", common.ReportViolations(violations, root.Log))
	}

	printSummary(results)

	if root.SharedFlags.Output != "" {
		if err := export.WriteReportCSV(inputs, results, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error writing CSV report: %v", err)
		}
		root.Log.Infof("Report written to %s", root.SharedFlags.Output)
	}
}

func printSummary(results models.Results) {
	aud := currencyutils.FormatAUD

	fmt.Println("Annual cashflow (pre-tax)")
	fmt.Printf("  Gross rental income      %s\n", aud(results.Cashflow.GrossRentalIncome))
	fmt.Printf("  Operating expenses       %s\n", aud(results.Cashflow.TotalOperatingExpenses))
	fmt.Printf("  Interest expense         %s\n", aud(results.Cashflow.InterestExpense))
	fmt.Printf("  Net cashflow             %s\n", aud(results.Cashflow.NetCashflowPreTax))
	fmt.Println()

	fmt.Println("Depreciation deductions")
	fmt.Printf("  Capital works (Div 43)   %s\n", aud(results.Depreciation.CapitalWorksDeduction))
	fmt.Printf("  Plant & equipment        %s\n", aud(results.Depreciation.PlantEquipmentDeduction))
	fmt.Printf("  Total                    %s\n", aud(results.Depreciation.TotalDepreciation))
	fmt.Println()

	gearing := "positively geared"
	if results.RentalPL.IsNegativelyGeared {
		gearing = "negatively geared"
	}
	fmt.Printf("Net rental result          %s (%s)\n", aud(results.RentalPL.NetRentalResult), gearing)
	fmt.Println()

	fmt.Println("Tax impact")
	fmt.Printf("  Tax without property     %s\n", aud(results.TaxImpact.WithoutProperty.TotalTax))
	fmt.Printf("  Tax with property        %s\n", aud(results.TaxImpact.WithProperty.TotalTax))
	fmt.Printf("  Tax benefit              %s\n", aud(results.TaxImpact.TaxBenefit))
	fmt.Printf("  After-tax cashflow       %s\n", aud(results.TaxImpact.AfterTaxCashflow))
}
