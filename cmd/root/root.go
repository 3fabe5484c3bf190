// Package root contains the root command for the application
package root

import (
	"fjacquet/gearcalc/internal/config"
	"fjacquet/gearcalc/internal/export"
	"fjacquet/gearcalc/internal/logging"
	"fjacquet/gearcalc/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the loaded application configuration, available after
	// PersistentPreRun
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "gearcalc",
		Short: "A CLI tool to estimate the tax impact of an Australian rental property.",
		Long: `gearcalc estimates the personal income-tax impact of owning an Australian
residential rental property: pre-tax cashflow, depreciation deductions,
taxable rental profit or loss, a with/without-property tax comparison and
loan repayment analysis.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to gearcalc!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			AppConfig = cfg

			logging.SetDefault(logging.NewLogrusAdapterFromLogger(Log))
			store.SetLogger(Log)
			export.SetLogger(Log)

			if delim := cfg.CSV.Delimiter; delim != "" {
				export.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input scenario file (YAML or JSON)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "csv", "Output format (csv, json, yaml)")
}
