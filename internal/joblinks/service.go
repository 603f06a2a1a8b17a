package joblinks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-coach/internal/llm"
	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/telemetry"
)

// ErrInvalidInput is returned when the resume text is missing.
var ErrInvalidInput = errors.New("invalid input")

// Result sources.
const (
	SourceAI        = "ai"
	SourceHeuristic = "heuristic"
)

// Result holds generated search links. JobTitle, Location and Skills are
// only filled by the heuristic path.
type Result struct {
	JobTitle    string       `json:"job_title"`
	Location    string       `json:"location"`
	Skills      []string     `json:"skills"`
	SearchLinks []SearchLink `json:"search_links"`
	Source      string       `json:"-"`
}

// Heuristic derives title, location and skills from the resume text and
// builds links from them. It never fails and makes no network call.
func Heuristic(resume string) Result {
	title := ExtractJobTitle(resume)
	location := ExtractLocation(resume)
	return Result{
		JobTitle:    title,
		Location:    location,
		Skills:      ExtractSkills(resume),
		SearchLinks: BuildSearchLinks(title, location),
		Source:      SourceHeuristic,
	}
}

// Service generates job search links, degrading to Heuristic when the
// completion endpoint is unavailable, fails, or replies with unusable JSON.
type Service struct {
	LLM llm.Completer
}

// NewService constructs a Service.
func NewService(completer llm.Completer) *Service {
	return &Service{LLM: completer}
}

// Generate returns search links for the resume.
func (s *Service) Generate(ctx context.Context, resume string) (Result, error) {
	resume = strings.TrimSpace(resume)
	if resume == "" {
		return Result{}, fmt.Errorf("%w: resume content is required", ErrInvalidInput)
	}
	if s.LLM == nil {
		return s.fallback(ctx, resume, "unconfigured", llm.ErrUpstreamUnavailable), nil
	}

	prompt := llm.JobLinksPrompt(resume)
	reply, err := s.LLM.Complete(llm.WithUseCase(ctx, llm.UseCaseJobLinks), prompt.System, prompt.User)
	if err != nil {
		reason := "upstream_error"
		if errors.Is(err, llm.ErrUpstreamUnavailable) {
			reason = "unconfigured"
		}
		return s.fallback(ctx, resume, reason, err), nil
	}

	links, err := ParseSearchLinks(reply)
	if err != nil {
		return s.fallback(ctx, resume, "unparseable_reply", err), nil
	}
	return Result{SearchLinks: links, Source: SourceAI}, nil
}

func (s *Service) fallback(ctx context.Context, resume, reason string, cause error) Result {
	metrics.IncFallback(llm.UseCaseJobLinks, reason)
	telemetry.Warn("job_links.fallback", map[string]any{
		"use_case":   llm.UseCaseJobLinks,
		"reason":     reason,
		"request_id": telemetry.RequestIDFromContext(ctx),
		"err":        cause,
	})
	return Heuristic(resume)
}
