package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/importer"
	"github.com/alexanderramin/chronos/internal/repository"
)

type scenarioLibrary struct {
	scenarios repository.ScenarioRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
	newID     func() string
}

func NewScenarioLibrary(
	scenarios repository.ScenarioRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScenarioLibrary {
	return &scenarioLibrary{
		scenarios: scenarios,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
		newID:     importer.NewID,
	}
}

func (s *scenarioLibrary) Save(ctx context.Context, result domain.GenerationResult, input *domain.ScenarioInput) (saved *domain.SavedScenario, err error) {
	fields := map[string]any{"scenario": result.ScenarioName, "events": len(result.Events)}
	defer observe(ctx, s.observer, "save-scenario", time.Now(), fields, &err)

	saved = &domain.SavedScenario{
		GenerationResult: result,
		ID:               s.newID(),
		Timestamp:        s.now().UnixMilli(),
	}
	if input != nil {
		saved.Input = *input
	} else {
		saved.Input = importer.ReconstructInput(result)
	}
	fields["id"] = saved.ID

	if err = s.store(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *scenarioLibrary) Get(ctx context.Context, id string) (*domain.SavedScenario, error) {
	return s.scenarios.GetByID(ctx, id)
}

func (s *scenarioLibrary) List(ctx context.Context) ([]*domain.SavedScenario, error) {
	return s.scenarios.List(ctx)
}

func (s *scenarioLibrary) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-scenario", time.Now(), map[string]any{"id": id}, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScenarioRepo(tx).Delete(ctx, id)
	})
	return err
}

func (s *scenarioLibrary) Import(ctx context.Context, data []byte) (saved *domain.SavedScenario, err error) {
	fields := map[string]any{"bytes": len(data)}
	defer observe(ctx, s.observer, "import-scenario", time.Now(), fields, &err)

	file, err := importer.Parse(data)
	if err != nil {
		return nil, err
	}
	rec := importer.ToSaved(file, s.now(), s.newID)
	saved = &rec
	fields["id"] = saved.ID
	fields["scenario"] = saved.ScenarioName

	if err = s.store(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *scenarioLibrary) ImportFile(ctx context.Context, path string) (saved *domain.SavedScenario, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "import-scenario-file", time.Now(), fields, &err)

	file, err := importer.LoadScenarioFile(path)
	if err != nil {
		return nil, err
	}
	rec := importer.ToSaved(file, s.now(), s.newID)
	fields["id"] = rec.ID
	if err = s.store(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *scenarioLibrary) Export(ctx context.Context, id string) ([]byte, string, error) {
	saved, err := s.scenarios.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := importer.ExportSaved(*saved)
	if err != nil {
		return nil, "", err
	}
	return data, importer.ExportFileName(saved.ScenarioName), nil
}

// store writes the scenario row and its events in one transaction.
func (s *scenarioLibrary) store(ctx context.Context, saved *domain.SavedScenario) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScenarioRepo(tx).Save(ctx, saved)
	})
	if err != nil {
		return fmt.Errorf("saving scenario %q: %w", saved.ScenarioName, err)
	}
	return nil
}
