package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/llm"
	"github.com/alexanderramin/chronos/internal/schema"
)

// RemoteScenarioClient requests a scenario from an external generative service.
type RemoteScenarioClient interface {
	// RequestGeneration makes one outbound call. It returns a *GenerationError
	// on any failure and never substitutes data of its own.
	RequestGeneration(ctx context.Context, input domain.ScenarioInput, credential string) (domain.GenerationResult, error)
}

type llmScenarioClient struct {
	client llm.LLMClient
}

// NewRemoteScenarioClient creates a RemoteScenarioClient backed by an LLM client.
func NewRemoteScenarioClient(client llm.LLMClient) RemoteScenarioClient {
	return &llmScenarioClient{client: client}
}

func (c *llmScenarioClient) RequestGeneration(ctx context.Context, input domain.ScenarioInput, credential string) (domain.GenerationResult, error) {
	if credential == "" {
		return domain.GenerationResult{}, &GenerationError{
			Code:    CodeCredentialMissing,
			Message: "no credential configured for remote generation",
			Err:     llm.ErrMissingCredential,
		}
	}

	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:           llm.TaskScenario,
		SystemPrompt:   scenarioSystemPrompt,
		UserPrompt:     buildScenarioPrompt(input),
		APIKey:         credential,
		ResponseSchema: schema.RequestSchema(),
	})
	if err != nil {
		return domain.GenerationResult{}, classifyCallError(err)
	}

	return parseScenarioResponse(resp.Text)
}

func classifyCallError(err error) *GenerationError {
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		return &GenerationError{Code: CodeCredentialMissing, Message: "remote service rejected missing credential", Err: err}
	case errors.Is(err, llm.ErrEmptyResponse), errors.Is(err, llm.ErrInvalidOutput):
		return &GenerationError{Code: CodeResponseMalformed, Message: "remote service returned an unusable reply", Err: err}
	default:
		return &GenerationError{Code: CodeRemoteCallFailed, Message: "remote generation call failed", Err: err}
	}
}

// parseScenarioResponse trims and validates the reply text, then fills
// missing event ids with event-<index>.
func parseScenarioResponse(text string) (domain.GenerationResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.GenerationResult{}, &GenerationError{
			Code:    CodeResponseMalformed,
			Message: "remote service returned an empty body",
			Err:     llm.ErrEmptyResponse,
		}
	}

	result, err := llm.DecodeJSON[domain.GenerationResult](text, schema.GenerationResponse().Validate)
	if err != nil {
		return domain.GenerationResult{}, &GenerationError{
			Code:    CodeResponseMalformed,
			Message: "remote payload does not match the scenario schema",
			Err:     err,
		}
	}

	for i := range result.Events {
		if result.Events[i].ID == "" {
			result.Events[i].ID = fmt.Sprintf("event-%d", i)
		}
	}
	if result.Events == nil {
		result.Events = []domain.WarEvent{}
	}
	result.Source = domain.SourceRemote
	return result, nil
}
