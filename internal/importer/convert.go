package importer

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/google/uuid"
)

const (
	importedContext = "Imported Intelligence"
	unknownYear     = "Unknown"
)

// NewID generates a saved-scenario id.
func NewID() string {
	return uuid.New().String()
}

// ToSaved turns a parsed file into a library record. A missing id, timestamp
// or input is filled in: newID supplies the id, now the timestamp, and the
// input is reconstructed from the scenario itself.
func ToSaved(file *ScenarioFile, now time.Time, newID func() string) domain.SavedScenario {
	saved := domain.SavedScenario{
		GenerationResult: domain.GenerationResult{
			ScenarioName: file.ScenarioName,
			Overview:     file.Overview,
			Events:       file.Events,
		},
		ID:        file.ID,
		Timestamp: int64(file.Timestamp),
	}
	if saved.ID == "" {
		saved.ID = newID()
	}
	if saved.Timestamp <= 0 {
		saved.Timestamp = now.UnixMilli()
	}
	if file.Input != nil {
		saved.Input = *file.Input
	} else {
		saved.Input = importedInput(saved.GenerationResult)
	}
	return saved
}

// importedInput is the best-effort input recorded for a file that did not carry one.
func importedInput(result domain.GenerationResult) domain.ScenarioInput {
	return domain.ScenarioInput{
		Name:              result.ScenarioName,
		Description:       result.Overview,
		Region:            domain.RegionUnknown,
		AdditionalContext: importedContext,
		EventCount:        len(result.Events),
		StartYear:         domain.CoalesceStr(result.FirstDate(), unknownYear),
		EndYear:           domain.CoalesceStr(result.LastDate(), unknownYear),
	}
}

// ReconstructInput derives an input for a result saved without its original
// parameters.
func ReconstructInput(result domain.GenerationResult) domain.ScenarioInput {
	return domain.ScenarioInput{
		Name:        result.ScenarioName,
		Description: result.Overview,
		Region:      domain.RegionGlobal,
		EventCount:  len(result.Events),
		StartYear:   result.FirstDate(),
		EndYear:     result.LastDate(),
	}
}
