// Package report renders a full calculation report (inputs plus results) as
// JSON or YAML for the persistence and export collaborators.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"fjacquet/gearcalc/internal/logging"
	"fjacquet/gearcalc/internal/models"
)

// Report pairs an input snapshot with the results computed from it.
type Report struct {
	GeneratedAt time.Time               `json:"generated_at" yaml:"generated_at"`
	Inputs      models.CalculatorInputs `json:"inputs" yaml:"inputs"`
	Results     models.Results          `json:"results" yaml:"results"`
}

// Generator renders reports in the supported formats.
type Generator struct {
	log logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{log: logging.GetLogger().WithField("component", "report")}
}

// NewReport assembles a report stamped with the current time.
func NewReport(inputs models.CalculatorInputs, results models.Results) *Report {
	return &Report{
		GeneratedAt: time.Now().UTC(),
		Inputs:      inputs,
		Results:     results,
	}
}

// Generate renders the report in the given format ("json" or "yaml").
func (g *Generator) Generate(report *Report, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(report)
	case "yaml":
		return g.generateYAML(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.log.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateYAML(report *Report) ([]byte, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		g.log.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}
