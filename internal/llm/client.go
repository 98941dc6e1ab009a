package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	// APIKey overrides the configured credential for this call.
	APIKey string
	// ResponseSchema, when set, constrains the reply to JSON matching it.
	ResponseSchema json.RawMessage
	Temperature    *float64 // nil uses config default
	MaxTokens      *int     // nil uses config default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// geminiClient implements LLMClient over the generateContent REST API.
type geminiClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient for the generateContent endpoint
// rooted at cfg.Endpoint.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		observer: observer,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiThinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type geminiGenerationConfig struct {
	Temperature      float64               `json:"temperature"`
	MaxOutputTokens  int                   `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string                `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage       `json:"responseSchema,omitempty"`
	ThinkingConfig   *geminiThinkingConfig `json:"thinkingConfig,omitempty"`
}

// geminiRequest is the JSON body sent to POST /v1beta/models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

// geminiResponse is the subset of the generateContent reply we consume.
type geminiResponse struct {
	Candidates   []geminiCandidate `json:"candidates"`
	ModelVersion string            `json:"modelVersion"`
}

// text concatenates the parts of the first candidate.
func (r *geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = c.cfg.APIKey
	}
	if apiKey == "" {
		c.observer.OnCallComplete(LLMCallEvent{
			Task:      req.Task,
			Model:     c.cfg.Model,
			Success:   false,
			ErrorCode: errorCode(ErrMissingCredential),
		})
		return nil, ErrMissingCredential
	}

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	body := c.buildRequest(req)

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	made := 0

	for i := 0; i < attempts; i++ {
		made++
		resp, err := c.doRequest(ctx, apiKey, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Task:      req.Task,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Attempts:  made,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      resp.text(),
				Model:     firstNonEmpty(resp.ModelVersion, c.cfg.Model),
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil || !retryable(err) {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	exhausted := c.cfg.MaxRetries > 0 && made == attempts
	finalErr := classify(ctx, lastErr, exhausted)
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Attempts:  made,
		Success:   false,
		ErrorCode: errorCode(finalErr),
	})
	return nil, finalErr
}

func (c *geminiClient) buildRequest(req GenerateRequest) geminiRequest {
	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := c.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	body := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: req.UserPrompt}},
		}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     temp,
			MaxOutputTokens: maxTok,
		},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}
	if len(req.ResponseSchema) > 0 {
		body.GenerationConfig.ResponseMimeType = "application/json"
		body.GenerationConfig.ResponseSchema = req.ResponseSchema
	}
	if c.cfg.ThinkingBudget > 0 {
		body.GenerationConfig.ThinkingConfig = &geminiThinkingConfig{ThinkingBudget: c.cfg.ThinkingBudget}
	}
	return body
}

func (c *geminiClient) doRequest(ctx context.Context, apiKey string, body geminiRequest) (*geminiResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := strings.TrimRight(c.cfg.Endpoint, "/") + "/v1beta/models/" + c.cfg.Model + ":generateContent"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: httpResp.StatusCode, Body: string(respBody)}
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding response envelope: %v", ErrInvalidOutput, err)
	}
	if strings.TrimSpace(resp.text()) == "" {
		return nil, ErrEmptyResponse
	}

	return &resp, nil
}

func retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.retryable()
	}
	return !errors.Is(err, ErrEmptyResponse) && !errors.Is(err, ErrInvalidOutput)
}

// classify maps the last attempt's error onto the package sentinels.
// exhausted is true when configured retries all ran and failed.
func classify(ctx context.Context, err error, exhausted bool) error {
	switch {
	case ctx.Err() != nil:
		return ErrTimeout
	case isConnectionError(err):
		return ErrUnavailable
	case errors.Is(err, ErrEmptyResponse), errors.Is(err, ErrInvalidOutput):
		return err
	case exhausted:
		return fmt.Errorf("%w: %w", ErrRetryExhausted, err)
	default:
		return err
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "CREDENTIAL_MISSING"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("HTTP_%d", statusErr.StatusCode)
	default:
		return "UNKNOWN"
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
