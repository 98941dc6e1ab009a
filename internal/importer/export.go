package importer

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/alexanderramin/chronos/internal/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Export renders a result as an indented scenario file.
func Export(result domain.GenerationResult) ([]byte, error) {
	return marshal(result)
}

// ExportSaved renders a library record, id, timestamp and input included.
func ExportSaved(saved domain.SavedScenario) ([]byte, error) {
	return marshal(saved)
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding scenario file: %w", err)
	}
	return data, nil
}

// ExportFileName is the suggested file name for an exported scenario:
// whitespace runs become underscores, followed by _INTEL.json.
func ExportFileName(scenarioName string) string {
	return whitespaceRun.ReplaceAllString(scenarioName, "_") + "_INTEL.json"
}
