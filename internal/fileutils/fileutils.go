// Package fileutils provides file helpers and scenario-file decoding shared
// by the commands.
package fileutils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"fjacquet/gearcalc/internal/models"
)

// FileExists checks if a file exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist.
func EnsureDirectoryExists(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ReadInputs decodes a calculator input file. The format follows the file
// extension: .json decodes as JSON, anything else as YAML (YAML being a
// superset of JSON, a mislabelled file still has a fair chance of loading).
func ReadInputs(filePath string) (models.CalculatorInputs, error) {
	var inputs models.CalculatorInputs

	data, err := os.ReadFile(filePath)
	if err != nil {
		return inputs, fmt.Errorf("failed to read inputs file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		if err := json.Unmarshal(data, &inputs); err != nil {
			return inputs, fmt.Errorf("failed to parse JSON inputs: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &inputs); err != nil {
			return inputs, fmt.Errorf("failed to parse YAML inputs: %w", err)
		}
	}

	return inputs, nil
}

// WriteInputs encodes calculator inputs to a file, format by extension as in
// ReadInputs.
func WriteInputs(filePath string, inputs models.CalculatorInputs) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		data, err = json.MarshalIndent(inputs, "", "  ")
	default:
		data, err = yaml.Marshal(inputs)
	}
	if err != nil {
		return fmt.Errorf("failed to encode inputs: %w", err)
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := EnsureDirectoryExists(dir); err != nil {
			return err
		}
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write inputs file: %w", err)
	}
	return nil
}
