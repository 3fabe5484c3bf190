package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"fjacquet/gearcalc/internal/engine"
	"fjacquet/gearcalc/internal/validation"
)

// Config is the complete application configuration, assembled from defaults,
// an optional config.yaml and GEARCALC_* environment variables.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Rates struct {
		WeeksPerYear     float64 `mapstructure:"weeks_per_year" yaml:"weeks_per_year"`
		CapitalWorksRate float64 `mapstructure:"capital_works_rate" yaml:"capital_works_rate"`
		MedicareLevyRate float64 `mapstructure:"medicare_levy_rate" yaml:"medicare_levy_rate"`
		MilestoneYears   []int   `mapstructure:"milestone_years" yaml:"milestone_years"`
	} `mapstructure:"rates" yaml:"rates"`

	Bounds validation.Bounds `mapstructure:"bounds" yaml:"bounds"`

	Store struct {
		ScenariosFile string `mapstructure:"scenarios_file" yaml:"scenarios_file"`
	} `mapstructure:"store" yaml:"store"`
}

// EngineRates converts the configured rate table into the engine's form.
func (c *Config) EngineRates() engine.Rates {
	return engine.Rates{
		WeeksPerYear:            c.Rates.WeeksPerYear,
		CapitalWorksRate:        c.Rates.CapitalWorksRate,
		DefaultMedicareLevyRate: c.Rates.MedicareLevyRate,
		MilestoneYears:          c.Rates.MilestoneYears,
	}
}

// InitializeConfig loads the hierarchical configuration: defaults, then
// config.yaml from $HOME/.gearcalc, .gearcalc or the working directory, then
// GEARCALC_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.gearcalc")
	v.AddConfigPath(".gearcalc")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GEARCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A malformed config file is reported but not fatal; defaults
			// and environment variables still apply.
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	rates := engine.DefaultRates()
	v.SetDefault("rates.weeks_per_year", rates.WeeksPerYear)
	v.SetDefault("rates.capital_works_rate", rates.CapitalWorksRate)
	v.SetDefault("rates.medicare_levy_rate", rates.DefaultMedicareLevyRate)
	v.SetDefault("rates.milestone_years", rates.MilestoneYears)

	bounds := validation.DefaultBounds()
	v.SetDefault("bounds.max_weekly_rent", bounds.MaxWeeklyRent)
	v.SetDefault("bounds.max_vacancy_weeks", bounds.MaxVacancyWeeks)
	v.SetDefault("bounds.max_interest_rate", bounds.MaxInterestRate)
	v.SetDefault("bounds.min_loan_term_years", bounds.MinLoanTermYears)
	v.SetDefault("bounds.max_loan_term_years", bounds.MaxLoanTermYears)
	v.SetDefault("bounds.max_marginal_tax_rate", bounds.MaxMarginalTaxRate)
	v.SetDefault("bounds.max_medicare_levy", bounds.MaxMedicareLevy)

	v.SetDefault("store.scenarios_file", "scenarios.yaml")
}

func validateConfig(config *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[config.Log.Level] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[config.Log.Format] {
		return fmt.Errorf("invalid log format: %s", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	if config.Rates.WeeksPerYear <= 0 {
		return fmt.Errorf("rates.weeks_per_year must be positive")
	}
	if config.Rates.CapitalWorksRate < 0 || config.Rates.CapitalWorksRate > 1 {
		return fmt.Errorf("rates.capital_works_rate must be between 0 and 1")
	}

	return nil
}
