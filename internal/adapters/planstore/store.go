// Package planstore persists plans as pretty-printed JSON files.
package planstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PlanStore = (*Store)(nil)

// Store implements ports.PlanStore on top of a single JSON document.
// Field identity, not textual layout, is the contract: everything written
// reads back equal.
type Store struct{}

// NewStore creates a new plan store.
func NewStore() *Store {
	return &Store{}
}

// Save writes the plan to path, creating parent directories as needed.
func (s *Store) Save(path string, plan *domain.Plan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrPlanMarshalFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrPlanCreateFailed.Error())
	}

	//nolint:gosec // Path is provided by trusted caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrPlanWriteFailed.Error())
	}

	return nil
}

// Load reads a plan back. A missing or malformed file is fatal to the
// caller: no action may be attempted afterwards.
func (s *Store) Load(path string) (*domain.Plan, error) {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPlanReadFailed.Error()), "path", path)
	}

	var plan domain.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPlanParseFailed.Error()), "path", path)
	}

	return &plan, nil
}
