// Package scenario manages named input scenarios in the store
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fjacquet/gearcalc/cmd/common"
	"fjacquet/gearcalc/cmd/root"
	"fjacquet/gearcalc/internal/fileutils"
	"fjacquet/gearcalc/internal/models"
	"fjacquet/gearcalc/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the scenario command
var Cmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage named input scenarios",
	Long:  `Scenario lists, saves, shows and deletes named input scenarios in the scenario store.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		scenarios, err := newStore().Load()
		if err != nil {
			root.Log.Fatalf("Error loading scenarios: %v", err)
		}
		if len(scenarios) == 0 {
			fmt.Println("No scenarios stored.")
			return
		}
		for _, s := range scenarios {
			fmt.Printf("%-24s %s (updated %s)\n", s.Name, s.ID, s.UpdatedAt.Format("2006-01-02 15:04"))
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a stored scenario's inputs as YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, err := newStore().Get(args[0])
		if err != nil {
			root.Log.Fatalf("Error: %v", err)
		}
		data, err := yaml.Marshal(scenario.Inputs)
		if err != nil {
			root.Log.Fatalf("Error encoding scenario: %v", err)
		}
		fmt.Print(string(data))
	},
}

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the --input file as a named scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputs, err := common.LoadInputs(root.SharedFlags.Input, root.Log)
		if err != nil {
			root.Log.Fatalf("Error reading inputs: %v", err)
		}
		saved, err := newStore().Put(args[0], inputs)
		if err != nil {
			root.Log.Fatalf("Error saving scenario: %v", err)
		}
		root.Log.Infof("Saved scenario %q (%s)", saved.Name, saved.ID)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := newStore().Delete(args[0]); err != nil {
			root.Log.Fatalf("Error deleting scenario: %v", err)
		}
		root.Log.Infof("Deleted scenario %q", args[0])
	},
}

var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write a template scenario input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rates := root.AppConfig.EngineRates()
		template := models.CalculatorInputs{
			Personal: models.PersonalInputs{
				BaseTaxableIncome:   100000,
				OwnershipPercentage: 100,
				MarginalTaxRate:     0.37,
				MedicareLevyRate:    rates.DefaultMedicareLevyRate,
			},
			Property: models.PropertyPurchaseInputs{
				PurchasePrice: 600000,
				LoanAmount:    480000,
				InterestRate:  0.06,
				LoanTermYears: 30,
			},
			RentalIncome: models.RentalIncomeInputs{WeeklyRent: 550, VacancyWeeksPerYear: 2},
			Depreciation: models.DepreciationInputs{ConstructionValue: 300000, PlantEquipmentAnnual: 5000},
		}
		if err := fileutils.WriteInputs(args[0], template); err != nil {
			root.Log.Fatalf("Error writing template: %v", err)
		}
		root.Log.Infof("Template scenario written to %s", args[0])
	},
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(saveCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(initCmd)
}

func newStore() *store.ScenarioStore {
	return store.NewScenarioStore(root.AppConfig.Store.ScenariosFile)
}
