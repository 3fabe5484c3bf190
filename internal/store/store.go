// Package store persists named input scenarios as YAML. The calculation
// engine has no awareness of persistence; this package is the collaborator
// that owns scenario lifecycle (ids, timestamps, storage location).
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"fjacquet/gearcalc/internal/config"
	"fjacquet/gearcalc/internal/fileutils"
	"fjacquet/gearcalc/internal/models"

	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a custom logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ScenarioStore manages loading and saving of named scenarios.
type ScenarioStore struct {
	ScenariosFile string
}

// NewScenarioStore creates a store backed by the given scenarios file. An
// empty filename falls back to "scenarios.yaml" resolved against the
// standard locations.
func NewScenarioStore(scenariosFile string) *ScenarioStore {
	return &ScenarioStore{ScenariosFile: scenariosFile}
}

// FindScenariosFile looks for the scenarios file in standard locations:
// the path itself, ./config/, then ~/.config/gearcalc/.
func (s *ScenarioStore) FindScenariosFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "gearcalc", filename)
		if fileutils.FileExists(configPath) {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

func (s *ScenarioStore) filename() string {
	if s.ScenariosFile == "" {
		return "scenarios.yaml"
	}
	return s.ScenariosFile
}

// Load reads every stored scenario. A missing file loads as an empty list,
// not an error.
func (s *ScenarioStore) Load() ([]models.Scenario, error) {
	filePath, err := s.FindScenariosFile(s.filename())
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Scenarios file not found: %s", s.filename())
			return []models.Scenario{}, nil
		}
		return nil, fmt.Errorf("error resolving scenarios file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading scenarios file: %w", err)
	}

	var scenarios []models.Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("error parsing scenarios file: %w", err)
	}

	log.Debugf("Loaded %d scenarios from %s", len(scenarios), filePath)
	return scenarios, nil
}

// Save writes the full scenario list back to disk, sorted by name for
// stable output, creating the parent directory if needed.
func (s *ScenarioStore) Save(scenarios []models.Scenario) error {
	filePath, err := s.FindScenariosFile(s.filename())
	if err != nil && err != os.ErrNotExist {
		return fmt.Errorf("error resolving scenarios file: %w", err)
	}
	if err == os.ErrNotExist {
		filePath = s.filename()
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	sorted := make([]models.Scenario, len(scenarios))
	copy(sorted, scenarios)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	data, err := yaml.Marshal(sorted)
	if err != nil {
		return fmt.Errorf("error marshaling scenarios: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing scenarios file: %w", err)
	}

	log.Debugf("Saved %d scenarios to %s", len(sorted), filePath)
	return nil
}

// Get returns the scenario with the given name or id.
func (s *ScenarioStore) Get(nameOrID string) (models.Scenario, error) {
	scenarios, err := s.Load()
	if err != nil {
		return models.Scenario{}, err
	}
	for _, sc := range scenarios {
		if sc.Name == nameOrID || sc.ID == nameOrID {
			return sc, nil
		}
	}
	return models.Scenario{}, fmt.Errorf("scenario not found: %s", nameOrID)
}

// Put creates a scenario under the given name, or replaces the inputs of an
// existing one of the same name, and returns the stored record.
func (s *ScenarioStore) Put(name string, inputs models.CalculatorInputs) (models.Scenario, error) {
	scenarios, err := s.Load()
	if err != nil {
		return models.Scenario{}, err
	}

	for i := range scenarios {
		if scenarios[i].Name == name {
			scenarios[i].Inputs = inputs
			scenarios[i].Touch()
			return scenarios[i], s.Save(scenarios)
		}
	}

	scenario := models.NewScenario(name, inputs)
	scenarios = append(scenarios, scenario)
	return scenario, s.Save(scenarios)
}

// Delete removes the scenario with the given name or id.
func (s *ScenarioStore) Delete(nameOrID string) error {
	scenarios, err := s.Load()
	if err != nil {
		return err
	}

	for i, sc := range scenarios {
		if sc.Name == nameOrID || sc.ID == nameOrID {
			scenarios = append(scenarios[:i], scenarios[i+1:]...)
			return s.Save(scenarios)
		}
	}
	return fmt.Errorf("scenario not found: %s", nameOrID)
}
