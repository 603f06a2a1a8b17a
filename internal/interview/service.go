package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-coach/internal/llm"
	"resume-coach/internal/shared/telemetry"
)

// ErrInvalidInput is returned when the resume or job description is missing.
var ErrInvalidInput = errors.New("invalid input")

// Service generates interview practice material. Like cover letters it
// has no heuristic fallback.
type Service struct {
	LLM llm.Completer
}

// NewService constructs a Service.
func NewService(completer llm.Completer) *Service {
	return &Service{LLM: completer}
}

// Prepare asks for question/answer pairs and parses them out of the reply.
func (s *Service) Prepare(ctx context.Context, resume, job string) ([]QAPair, error) {
	resume = strings.TrimSpace(resume)
	job = strings.TrimSpace(job)
	if resume == "" || job == "" {
		return nil, fmt.Errorf("%w: resume and job description are required", ErrInvalidInput)
	}
	if s.LLM == nil {
		return nil, llm.ErrUpstreamUnavailable
	}

	prompt := llm.InterviewPrompt(resume, job)
	reply, err := s.LLM.Complete(llm.WithUseCase(ctx, llm.UseCaseInterview), prompt.System, prompt.User)
	if err != nil {
		telemetry.Error("interview.failed", map[string]any{
			"request_id": telemetry.RequestIDFromContext(ctx),
			"err":        err,
		})
		return nil, err
	}

	pairs, err := ParsePairs(reply)
	if err != nil {
		telemetry.Warn("interview.unparsed", map[string]any{
			"request_id":  telemetry.RequestIDFromContext(ctx),
			"reply_chars": len(reply),
		})
		return nil, err
	}
	telemetry.Info("interview.parsed", map[string]any{
		"request_id": telemetry.RequestIDFromContext(ctx),
		"pairs":      len(pairs),
	})
	return pairs, nil
}
