package models

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is a named, persisted snapshot of calculator inputs. Scenarios are
// owned by the store collaborator; the engine itself never sees them.
type Scenario struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Inputs    CalculatorInputs `json:"inputs" yaml:"inputs"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" yaml:"updated_at"`
}

// NewScenario creates a scenario with a fresh id and matching timestamps.
func NewScenario(name string, inputs CalculatorInputs) Scenario {
	now := time.Now().UTC()
	return Scenario{
		ID:        uuid.NewString(),
		Name:      name,
		Inputs:    inputs,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification timestamp after an in-place edit.
func (s *Scenario) Touch() {
	s.UpdatedAt = time.Now().UTC()
}
