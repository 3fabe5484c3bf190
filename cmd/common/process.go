// Package common contains shared functionality for command handlers
package common

import (
	"fmt"

	"fjacquet/gearcalc/internal/config"
	"fjacquet/gearcalc/internal/engine"
	"fjacquet/gearcalc/internal/fileutils"
	"fjacquet/gearcalc/internal/models"
	"fjacquet/gearcalc/internal/validation"

	"github.com/sirupsen/logrus"
)

// LoadInputs reads a scenario input file after checking it is a readable
// regular file.
func LoadInputs(inputFile string, log *logrus.Logger) (models.CalculatorInputs, error) {
	if inputFile == "" {
		return models.CalculatorInputs{}, fmt.Errorf("no input file given, use --input")
	}
	if err := validation.IsValidPath(inputFile); err != nil {
		return models.CalculatorInputs{}, err
	}

	log.WithField("file", inputFile).Debug("Reading calculator inputs")
	return fileutils.ReadInputs(inputFile)
}

// Run loads inputs, passes them through the validation gate and, when clean,
// runs the full calculation pipeline. Violations are returned rather than
// logged so each command can decide how to surface them.
func Run(cfg *config.Config, inputFile string, log *logrus.Logger) (models.CalculatorInputs, models.Results, []validation.Violation, error) {
	inputs, err := LoadInputs(inputFile, log)
	if err != nil {
		return models.CalculatorInputs{}, models.Results{}, nil, err
	}

	violations := validation.Validate(inputs, cfg.Bounds)
	if len(violations) > 0 {
		return inputs, models.Results{}, violations, nil
	}

	calc := engine.New(cfg.EngineRates())
	results := calc.Calculate(inputs)
	log.WithFields(logrus.Fields{
		"net_rental_result":  results.RentalPL.NetRentalResult,
		"tax_benefit":        results.TaxImpact.TaxBenefit,
		"after_tax_cashflow": results.TaxImpact.AfterTaxCashflow,
	}).Debug("Calculation complete")

	return inputs, results, nil, nil
}

// ReportViolations logs every violation at warning level and returns an
// error summarizing the count, for commands that treat violations as fatal.
func ReportViolations(violations []validation.Violation, log *logrus.Logger) error {
	for _, v := range violations {
		log.Warnf("Invalid input %s", v)
	}
	return fmt.Errorf("input validation failed with %d violation(s)", len(violations))
}
