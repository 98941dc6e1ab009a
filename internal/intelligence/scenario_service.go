package intelligence

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/generation"
)

// ScenarioService is the single entry point for producing scenarios.
// It prefers the remote generator and falls back to procedural synthesis.
type ScenarioService interface {
	// Generate always returns a result. Remote failures are logged and
	// absorbed by the procedural fallback.
	Generate(ctx context.Context, input domain.ScenarioInput) domain.GenerationResult
}

type scenarioService struct {
	remote     RemoteScenarioClient
	generator  *generation.Generator
	credential string
	rngs       generation.Source
	logger     *slog.Logger
}

// NewScenarioService wires the remote client and the offline generator.
// An empty credential means the remote client is never called. A nil
// logger discards fallback diagnostics.
func NewScenarioService(remote RemoteScenarioClient, generator *generation.Generator, credential string, rngs generation.Source, logger *slog.Logger) ScenarioService {
	if rngs == nil {
		rngs = generation.NewSource(0)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &scenarioService{
		remote:     remote,
		generator:  generator,
		credential: credential,
		rngs:       rngs,
		logger:     logger,
	}
}

func (s *scenarioService) Generate(ctx context.Context, input domain.ScenarioInput) domain.GenerationResult {
	if s.credential == "" || s.remote == nil {
		s.logger.Debug("remote generation disabled, using procedural generator",
			slog.String("scenario", input.Name))
		return s.procedural(input)
	}

	result, err := s.remote.RequestGeneration(ctx, input, s.credential)
	if err == nil {
		return result
	}

	code := CodeRemoteCallFailed
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		code = genErr.Code
	}
	s.logger.Warn("remote generation failed, falling back to procedural generator",
		slog.String("scenario", input.Name),
		slog.String("code", code),
		slog.String("error", err.Error()))
	return s.procedural(input)
}

func (s *scenarioService) procedural(input domain.ScenarioInput) domain.GenerationResult {
	return s.generator.Generate(input, s.rngs())
}
