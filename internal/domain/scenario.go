package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinEventCount = 1
	MaxEventCount = 100

	MinStrategicImpact = 1.0
	MaxStrategicImpact = 10.0
)

// ScenarioInput holds the parameters a scenario is generated from.
// StartYear and EndYear are free-text labels such as "1939 AD" or "400 BC".
type ScenarioInput struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Region            Region `json:"continent"`
	AdditionalContext string `json:"additionalContext"`
	EventCount        int    `json:"eventCount"`
	StartYear         string `json:"startYear"`
	EndYear           string `json:"endYear"`
}

// Validate checks the input invariants. Returns every problem found.
func (in ScenarioInput) Validate() []error {
	var errs []error
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	if in.EventCount < MinEventCount || in.EventCount > MaxEventCount {
		errs = append(errs, fmt.Errorf("eventCount must be between %d and %d, got %d", MinEventCount, MaxEventCount, in.EventCount))
	}
	if !in.Region.IsKnown() {
		errs = append(errs, fmt.Errorf("region %q is not one of the known regions", in.Region))
	}
	return errs
}

// WarEvent is one dated, located, faction-attributed occurrence in a scenario.
// FactionsInvolved is ordered by narrative emphasis.
type WarEvent struct {
	ID               string   `json:"id"`
	Date             string   `json:"date"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	StrategicImpact  float64  `json:"strategicImpact"`
	FactionsInvolved []string `json:"factionsInvolved"`
	Location         string   `json:"location"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
}

// GenerationResult is a generated scenario. Events are in chronological
// order and consumers must not re-sort them.
type GenerationResult struct {
	ScenarioName string     `json:"scenarioName"`
	Overview     string     `json:"overview"`
	Events       []WarEvent `json:"events"`

	Source GenerationSource `json:"-"`
}

// SavedScenario is a GenerationResult stored in the scenario library.
// Timestamp is epoch milliseconds.
type SavedScenario struct {
	GenerationResult
	ID        string        `json:"id"`
	Timestamp int64         `json:"timestamp"`
	Input     ScenarioInput `json:"input"`
}

// SavedAt returns the save time as a time.Time.
func (s *SavedScenario) SavedAt() time.Time {
	return time.UnixMilli(s.Timestamp)
}

// FirstDate returns the date label of the first event, or "" when empty.
func (r *GenerationResult) FirstDate() string {
	if len(r.Events) == 0 {
		return ""
	}
	return r.Events[0].Date
}

// LastDate returns the date label of the last event, or "" when empty.
func (r *GenerationResult) LastDate() string {
	if len(r.Events) == 0 {
		return ""
	}
	return r.Events[len(r.Events)-1].Date
}
