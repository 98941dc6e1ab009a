package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/schema"
)

// ErrImportInvalid matches every *ImportError via errors.Is.
var ErrImportInvalid = errors.New("invalid scenario file")

// ImportError lists why a scenario file was rejected.
type ImportError struct {
	Problems []string
}

func (e *ImportError) Error() string {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(e.Problems))
	for _, p := range e.Problems {
		msg += "\n  - " + p
	}
	return msg
}

func (e *ImportError) Is(target error) bool {
	return target == ErrImportInvalid
}

// Parse validates data against the scenario file schema and decodes it.
// A non-empty string scenarioName and an events array are required.
func Parse(data []byte) (*ScenarioFile, error) {
	if err := schema.ScenarioFile().Validate(data); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			return nil, &ImportError{Problems: verr.Problems}
		}
		return nil, &ImportError{Problems: []string{err.Error()}}
	}

	var file ScenarioFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &ImportError{Problems: []string{fmt.Sprintf("decoding scenario file: %v", err)}}
	}
	if strings.TrimSpace(file.ScenarioName) == "" {
		return nil, &ImportError{Problems: []string{"scenarioName must not be blank"}}
	}
	if file.Events == nil {
		file.Events = []domain.WarEvent{}
	}
	return &file, nil
}
