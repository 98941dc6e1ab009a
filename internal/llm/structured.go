package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DocumentValidator checks the JSON document before it is decoded.
// Validating the raw document lets required-field checks distinguish a
// missing key from a zero value.
type DocumentValidator func(doc []byte) error

// DecodeJSON parses raw model output as a single JSON document of type T.
// Only surrounding whitespace is tolerated: prose, code fences or trailing
// text make the output invalid. If validate is non-nil the document must
// pass it before decoding.
func DecodeJSON[T any](raw string, validate DocumentValidator) (T, error) {
	var zero T

	doc := []byte(strings.TrimSpace(raw))
	if len(doc) == 0 {
		return zero, fmt.Errorf("%w: empty document", ErrInvalidOutput)
	}
	if !json.Valid(doc) {
		return zero, fmt.Errorf("%w: response is not a JSON document", ErrInvalidOutput)
	}

	if validate != nil {
		if err := validate(doc); err != nil {
			return zero, fmt.Errorf("%w: %w", ErrInvalidOutput, err)
		}
	}

	var result T
	dec := json.NewDecoder(bytes.NewReader(doc))
	if err := dec.Decode(&result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return result, nil
}
