package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/google/uuid"
)

var testTimestamp atomic.Int64

func init() {
	testTimestamp.Store(1_700_000_000_000)
}

// Scenario options
type ScenarioOption func(*domain.SavedScenario)

func WithEvents(events ...domain.WarEvent) ScenarioOption {
	return func(s *domain.SavedScenario) {
		s.Events = events
		s.Input.EventCount = len(events)
	}
}

func WithTimestamp(ms int64) ScenarioOption {
	return func(s *domain.SavedScenario) {
		s.Timestamp = ms
	}
}

func WithRegion(r domain.Region) ScenarioOption {
	return func(s *domain.SavedScenario) {
		s.Input.Region = r
	}
}

func WithSource(src domain.GenerationSource) ScenarioOption {
	return func(s *domain.SavedScenario) {
		s.Source = src
	}
}

// NewTestEvent returns an event at (lat, lng) with a unique id.
func NewTestEvent(title string, lat, lng float64) domain.WarEvent {
	return domain.WarEvent{
		ID:               uuid.New().String(),
		Date:             "JAN 1940",
		Title:            title,
		Description:      title + " description",
		StrategicImpact:  5,
		FactionsInvolved: []string{"Northern Coalition", "Eastern Bloc"},
		Location:         title + " site",
		Latitude:         lat,
		Longitude:        lng,
	}
}

// NewTestScenario returns a saved scenario with three events. Each call gets
// a later timestamp than the previous one.
func NewTestScenario(name string, opts ...ScenarioOption) *domain.SavedScenario {
	s := &domain.SavedScenario{
		GenerationResult: domain.GenerationResult{
			ScenarioName: name,
			Overview:     fmt.Sprintf("Overview of %s.", name),
			Events: []domain.WarEvent{
				NewTestEvent("Opening", 52.5, 13.4),
				NewTestEvent("Escalation", 50.1, 14.4),
				NewTestEvent("Resolution", 48.2, 16.4),
			},
		},
		ID:        uuid.New().String(),
		Timestamp: testTimestamp.Add(1000),
		Input: domain.ScenarioInput{
			Name:        name,
			Description: "test premise",
			Region:      domain.RegionEurope,
			EventCount:  3,
			StartYear:   "1940",
			EndYear:     "1945",
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
