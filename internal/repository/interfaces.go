package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/chronos/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// ScenarioRepo persists saved scenarios together with their ordered events.
type ScenarioRepo interface {
	// Save inserts s, replacing any scenario with the same id.
	Save(ctx context.Context, s *domain.SavedScenario) error
	GetByID(ctx context.Context, id string) (*domain.SavedScenario, error)
	// List returns every saved scenario, newest first.
	List(ctx context.Context) ([]*domain.SavedScenario, error)
	Delete(ctx context.Context, id string) error
}
