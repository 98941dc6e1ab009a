package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLMClient struct {
	response string
	err      error
	calls    int
	lastReq  llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "test-model"}, nil
}

const twoEventResponse = `{
  "scenarioName": "Winter Line",
  "overview": "A frozen front.",
  "events": [
    {"id": "alpha", "date": "JAN 1940", "title": "Crossing", "description": "Forces cross the river.",
     "strategicImpact": 6, "factionsInvolved": ["North", "South"], "location": "Narvik",
     "latitude": 68.4, "longitude": 17.4},
    {"date": "FEB 1940", "title": "Counterstrike", "description": "The line breaks.",
     "strategicImpact": 8.5, "factionsInvolved": ["South"], "location": "Oslo",
     "latitude": 59.9, "longitude": 10.7}
  ]
}`

func testScenarioInput() domain.ScenarioInput {
	return domain.ScenarioInput{
		Name:              "Winter Line",
		Description:       "Neutral Scandinavia is drawn in.",
		Region:            domain.RegionEurope,
		AdditionalContext: "Focus on naval logistics",
		EventCount:        2,
		StartYear:         "1939 AD",
		EndYear:           "1941 AD",
	}
}

func requireCode(t *testing.T, err error, code string) *GenerationError {
	t.Helper()
	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr), "expected *GenerationError, got %v", err)
	assert.Equal(t, code, genErr.Code)
	return genErr
}

func TestRequestGeneration_Success(t *testing.T) {
	client := &mockLLMClient{response: "  \n" + twoEventResponse + "\n "}
	remote := NewRemoteScenarioClient(client)

	result, err := remote.RequestGeneration(context.Background(), testScenarioInput(), "key-123")

	require.NoError(t, err)
	assert.Equal(t, "Winter Line", result.ScenarioName)
	assert.Equal(t, "A frozen front.", result.Overview)
	assert.Equal(t, domain.SourceRemote, result.Source)
	require.Len(t, result.Events, 2)
	assert.Equal(t, "alpha", result.Events[0].ID)
	assert.Equal(t, "event-1", result.Events[1].ID)
	assert.Equal(t, 8.5, result.Events[1].StrategicImpact)
	assert.Equal(t, []string{"North", "South"}, result.Events[0].FactionsInvolved)
}

func TestRequestGeneration_NullEventIDGetsPositionalID(t *testing.T) {
	response := `{"scenarioName":"x","overview":"y","events":[
		{"id":"keep","date":"d","title":"t","description":"z","strategicImpact":3,"factionsInvolved":["a"],"location":"l","latitude":1,"longitude":2},
		{"id":null,"date":"d","title":"t","description":"z","strategicImpact":3,"factionsInvolved":["a"],"location":"l","latitude":1,"longitude":2}
	]}`
	remote := NewRemoteScenarioClient(&mockLLMClient{response: response})

	result, err := remote.RequestGeneration(context.Background(), testScenarioInput(), "key")

	require.NoError(t, err)
	require.Len(t, result.Events, 2)
	assert.Equal(t, "keep", result.Events[0].ID)
	assert.Equal(t, "event-1", result.Events[1].ID)
}

func TestRequestGeneration_RequestShape(t *testing.T) {
	client := &mockLLMClient{response: twoEventResponse}
	remote := NewRemoteScenarioClient(client)

	_, err := remote.RequestGeneration(context.Background(), testScenarioInput(), "key-123")
	require.NoError(t, err)

	req := client.lastReq
	assert.Equal(t, llm.TaskScenario, req.Task)
	assert.Equal(t, "key-123", req.APIKey)
	assert.NotEmpty(t, req.ResponseSchema)
	for _, want := range []string{
		`"Winter Line"`, "Europe", "From 1939 AD to 1941 AD",
		"Neutral Scandinavia is drawn in.", "Focus on naval logistics",
		"Exactly 2 chronological events",
	} {
		assert.Contains(t, req.UserPrompt, want)
	}
}

func TestRequestGeneration_MissingCredential(t *testing.T) {
	client := &mockLLMClient{response: twoEventResponse}
	remote := NewRemoteScenarioClient(client)

	_, err := remote.RequestGeneration(context.Background(), testScenarioInput(), "")

	requireCode(t, err, CodeCredentialMissing)
	assert.ErrorIs(t, err, llm.ErrMissingCredential)
	assert.Equal(t, 0, client.calls)
}

func TestRequestGeneration_CallErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unavailable", llm.ErrUnavailable, CodeRemoteCallFailed},
		{"timeout", llm.ErrTimeout, CodeRemoteCallFailed},
		{"status", &llm.StatusError{StatusCode: 403, Body: "denied"}, CodeRemoteCallFailed},
		{"empty", llm.ErrEmptyResponse, CodeResponseMalformed},
		{"envelope", llm.ErrInvalidOutput, CodeResponseMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := NewRemoteScenarioClient(&mockLLMClient{err: tt.err})
			_, err := remote.RequestGeneration(context.Background(), testScenarioInput(), "key")
			requireCode(t, err, tt.code)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRequestGeneration_MalformedPayloads(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"blank", "   \n\t"},
		{"prose", "I cannot help with that."},
		{"prose around payload", "Sure! Here is your scenario:\n" + twoEventResponse + "\nHope this helps } trailing"},
		{"fenced payload", "```json\n" + twoEventResponse + "\n```"},
		{"trailing brace", twoEventResponse + "}"},
		{"truncated", `{"scenarioName":"x","overview":"y","events":[{"date":"JAN`},
		{"missing overview", `{"scenarioName":"x","events":[]}`},
		{"missing coordinates", `{"scenarioName":"x","overview":"y","events":[{"date":"d","title":"t","description":"z","strategicImpact":3,"factionsInvolved":["a"],"location":"l"}]}`},
		{"impact as text", `{"scenarioName":"x","overview":"y","events":[{"date":"d","title":"t","description":"z","strategicImpact":"severe","factionsInvolved":["a"],"location":"l","latitude":1,"longitude":2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := NewRemoteScenarioClient(&mockLLMClient{response: tt.response})
			result, err := remote.RequestGeneration(context.Background(), testScenarioInput(), "key")
			requireCode(t, err, CodeResponseMalformed)
			assert.Empty(t, result.Events)
		})
	}
}

func TestRequestGeneration_EmptyEventList(t *testing.T) {
	remote := NewRemoteScenarioClient(&mockLLMClient{response: `{"scenarioName":"x","overview":"y","events":[]}`})

	result, err := remote.RequestGeneration(context.Background(), testScenarioInput(), "key")

	require.NoError(t, err)
	assert.NotNil(t, result.Events)
	assert.Empty(t, result.Events)
}

func TestGenerationError_Message(t *testing.T) {
	err := &GenerationError{Code: CodeRemoteCallFailed, Message: "call failed", Err: llm.ErrTimeout}
	assert.Equal(t, "REMOTE_CALL_FAILED: call failed: llm request timed out", err.Error())

	bare := &GenerationError{Code: CodeResponseMalformed, Message: "bad"}
	assert.Equal(t, "RESPONSE_MALFORMED: bad", bare.Error())
}
