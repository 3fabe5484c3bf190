// Package export writes a full calculation report to a file
package export

import (
	"fmt"
	"os"

	"fjacquet/gearcalc/cmd/common"
	"fjacquet/gearcalc/cmd/root"
	"fjacquet/gearcalc/internal/export"
	"fjacquet/gearcalc/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a scenario's full report to CSV, JSON or YAML",
	Long: `Export runs the calculation pipeline over a scenario input file and writes
the combined inputs-plus-results report in the format chosen with --format:
csv (tabular section/field/value rows), json or yaml.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("No output file given, use --output")
	}

	inputs, results, violations, err := common.Run(root.AppConfig, root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.Fatalf("Error running calculation: %v", err)
	}
	if len(violations) > 0 {
		root.Log.Fatalf("%v", common.ReportViolations(violations, root.Log))
	}

	switch root.SharedFlags.Format {
	case "csv":
		err = export.WriteReportCSV(inputs, results, root.SharedFlags.Output)
	case "json", "yaml":
		var data []byte
		data, err = report.NewGenerator().Generate(report.NewReport(inputs, results), root.SharedFlags.Format)
		if err == nil {
			err = os.WriteFile(root.SharedFlags.Output, data, 0644)
		}
	default:
		err = fmt.Errorf("unsupported format: %s", root.SharedFlags.Format)
	}
	if err != nil {
		root.Log.Fatalf("Error exporting report: %v", err)
	}

	root.Log.Infof("Report written to %s", root.SharedFlags.Output)
}
