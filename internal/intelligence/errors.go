package intelligence

import "fmt"

// GenerationError codes.
const (
	CodeCredentialMissing = "CREDENTIAL_MISSING"
	CodeRemoteCallFailed  = "REMOTE_CALL_FAILED"
	CodeResponseMalformed = "RESPONSE_MALFORMED"
)

// GenerationError reports why a remote generation attempt produced no result.
type GenerationError struct {
	Code    string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GenerationError) Unwrap() error { return e.Err }
