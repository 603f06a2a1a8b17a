package critique

import (
	"context"
	"errors"
	"strings"

	"resume-coach/internal/llm"
	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/telemetry"
)

// Result sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Result is the analysis returned to clients.
type Result struct {
	Feedback string `json:"feedback"`
	Scores   Scores `json:"scores"`
	Source   string `json:"-"`
}

// Service produces resume feedback, degrading to Fallback whenever the
// completion endpoint is unavailable or fails.
type Service struct {
	LLM llm.Completer
}

// NewService constructs a Service.
func NewService(completer llm.Completer) *Service {
	return &Service{LLM: completer}
}

// Analyze never fails: every upstream problem yields the heuristic result.
func (s *Service) Analyze(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return s.fallback(ctx, text, "empty_text", nil)
	}
	if s.LLM == nil {
		return s.fallback(ctx, text, "unconfigured", llm.ErrUpstreamUnavailable)
	}

	prompt := llm.ResumeCritiquePrompt(text)
	feedback, err := s.LLM.Complete(llm.WithUseCase(ctx, llm.UseCaseCritique), prompt.System, prompt.User)
	if err != nil {
		reason := "upstream_error"
		if errors.Is(err, llm.ErrUpstreamUnavailable) {
			reason = "unconfigured"
		}
		return s.fallback(ctx, text, reason, err)
	}

	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return s.fallback(ctx, text, "empty_reply", nil)
	}
	return Result{
		Feedback: feedback,
		Scores:   ExtractScores(feedback),
		Source:   SourceAI,
	}
}

func (s *Service) fallback(ctx context.Context, text, reason string, cause error) Result {
	metrics.IncFallback(llm.UseCaseCritique, reason)
	fields := map[string]any{
		"use_case":   llm.UseCaseCritique,
		"reason":     reason,
		"request_id": telemetry.RequestIDFromContext(ctx),
	}
	if cause != nil {
		fields["err"] = cause
	}
	telemetry.Warn("critique.fallback", fields)
	return Fallback(text)
}
