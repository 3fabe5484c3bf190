// Package validate runs the input validation gate without calculating
package validate

import (
	"fmt"

	"fjacquet/gearcalc/cmd/common"
	"fjacquet/gearcalc/cmd/root"
	"fjacquet/gearcalc/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario input file",
	Long: `Validate checks every field of a scenario input file against the configured
bounds and reports all violations without running the calculators.`,
	Run: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	inputs, err := common.LoadInputs(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.Fatalf("Error reading inputs: %v", err)
	}

	violations := validation.Validate(inputs, root.AppConfig.Bounds)
	if len(violations) == 0 {
		root.Log.Info("Inputs are valid")
		return
	}

	for _, v := range violations {
		fmt.Printf("%s\n", v)
	}
	root.Log.Fatalf("Input validation failed with %d violation(s)", len(violations))
}
