package importer

import (
	"fmt"
	"os"

	"github.com/alexanderramin/chronos/internal/domain"
)

// ScenarioFile is the JSON document exchanged by export and import.
// Only scenarioName and events are mandatory; the rest is filled on import.
type ScenarioFile struct {
	ID           string                `json:"id,omitempty"`
	Timestamp    float64               `json:"timestamp,omitempty"`
	ScenarioName string                `json:"scenarioName"`
	Overview     string                `json:"overview"`
	Events       []domain.WarEvent     `json:"events"`
	Input        *domain.ScenarioInput `json:"input,omitempty"`
}

// LoadScenarioFile reads and validates a scenario file from disk.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return Parse(data)
}
