package service

import (
	"context"

	"github.com/alexanderramin/chronos/internal/domain"
)

// ScenarioLibrary is the local collection of saved scenarios.
type ScenarioLibrary interface {
	// Save stores a generated result. A nil input is reconstructed from the
	// result itself.
	Save(ctx context.Context, result domain.GenerationResult, input *domain.ScenarioInput) (*domain.SavedScenario, error)
	Get(ctx context.Context, id string) (*domain.SavedScenario, error)
	// List returns saved scenarios, newest first.
	List(ctx context.Context) ([]*domain.SavedScenario, error)
	Delete(ctx context.Context, id string) error

	// Import validates and stores a scenario file. Invalid files yield an
	// error matching importer.ErrImportInvalid.
	Import(ctx context.Context, data []byte) (*domain.SavedScenario, error)
	ImportFile(ctx context.Context, path string) (*domain.SavedScenario, error)
	// Export renders a saved scenario and suggests a file name for it.
	Export(ctx context.Context, id string) (data []byte, fileName string, err error)
}
