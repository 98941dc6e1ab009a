// Package schema validates JSON documents that cross the process boundary:
// payloads returned by the remote generator and scenario files supplied for
// import.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed generation_response.json
	generationResponseSchema []byte

	//go:embed scenario_file.json
	scenarioFileSchema []byte

	//go:embed request_schema.json
	requestSchema []byte
)

// ValidationError lists every way a document failed its schema.
type ValidationError struct {
	Schema   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d schema violations: %s", e.Schema, len(e.Problems), strings.Join(e.Problems, "; "))
}

// Validator checks documents against one compiled schema.
type Validator struct {
	name   string
	schema *gojsonschema.Schema
}

// NewValidator compiles schemaData. name labels validation errors.
func NewValidator(name string, schemaData []byte) (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("compiling %s schema: %w", name, err)
	}
	return &Validator{name: name, schema: s}, nil
}

// Validate checks a raw JSON document. A document that is not JSON at all
// yields a plain error; a document that parses but violates the schema
// yields *ValidationError.
func (v *Validator) Validate(doc []byte) error {
	if !json.Valid(doc) {
		return fmt.Errorf("%s: document is not valid JSON", v.name)
	}
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%s: %w", v.name, err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &ValidationError{Schema: v.name, Problems: problems}
}

func mustValidator(name string, data []byte) *Validator {
	v, err := NewValidator(name, data)
	if err != nil {
		panic(err)
	}
	return v
}

var (
	generationResponse = mustValidator("generation_response", generationResponseSchema)
	scenarioFile       = mustValidator("scenario_file", scenarioFileSchema)
)

// GenerationResponse validates a remote generation payload. Event ids are optional.
func GenerationResponse() *Validator { return generationResponse }

// ScenarioFile validates an imported scenario file.
func ScenarioFile() *Validator { return scenarioFile }

// RequestSchema returns the structured-output schema sent with every
// generation request. It uses the remote service's type vocabulary and lists
// every event field, id included, as required.
func RequestSchema() json.RawMessage {
	out := make(json.RawMessage, len(requestSchema))
	copy(out, requestSchema)
	return out
}
