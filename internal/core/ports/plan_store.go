package ports

import "go.trai.ch/twin/internal/core/domain"

// PlanStore persists plans so planning and application can be decoupled
// in time. The encoding must round-trip losslessly.
//
//go:generate mockgen -source=plan_store.go -destination=mocks/mock_plan_store.go -package=mocks
type PlanStore interface {
	// Save writes the plan to the given path, creating parent directories.
	Save(path string, plan *domain.Plan) error

	// Load reads a plan back. A missing or malformed file is an error;
	// the caller must not attempt any action afterwards.
	Load(path string) (*domain.Plan, error)
}
