package coverletter

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"resume-coach/internal/llm"
	"resume-coach/internal/shared/telemetry"
)

// ErrInvalidInput is returned when the resume or job description is missing.
var ErrInvalidInput = errors.New("invalid input")

// ErrEmptyLetter is returned when the reply holds nothing once cleaned up.
var ErrEmptyLetter = errors.New("empty cover letter")

// Service writes cover letters. It has no heuristic fallback: upstream
// failures are returned to the caller.
type Service struct {
	LLM llm.Completer
}

// NewService constructs a Service.
func NewService(completer llm.Completer) *Service {
	return &Service{LLM: completer}
}

// Generate produces a letter tailored to the job description.
func (s *Service) Generate(ctx context.Context, resume, job string) (string, error) {
	resume = strings.TrimSpace(resume)
	job = strings.TrimSpace(job)
	if resume == "" || job == "" {
		return "", fmt.Errorf("%w: resume and job description are required", ErrInvalidInput)
	}
	if s.LLM == nil {
		return "", llm.ErrUpstreamUnavailable
	}

	prompt := llm.CoverLetterPrompt(resume, job)
	reply, err := s.LLM.Complete(llm.WithUseCase(ctx, llm.UseCaseCoverLetter), prompt.System, prompt.User)
	if err != nil {
		telemetry.Error("cover_letter.failed", map[string]any{
			"request_id": telemetry.RequestIDFromContext(ctx),
			"err":        err,
		})
		return "", err
	}

	letter := Clean(reply)
	if letter == "" {
		return "", ErrEmptyLetter
	}
	return letter, nil
}

var (
	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	trailingSpace   = regexp.MustCompile(`(?m) +$`)
	blankRuns       = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)
	preamble        = regexp.MustCompile(`(?i)^\s*(?:here is|here's|below is)[^\n]*:\s*\n`)
)

// Clean normalizes whitespace so that paragraphs are separated by exactly
// one blank line, and removes a leading "Here is ...:" preamble line.
func Clean(letter string) string {
	letter = strings.ReplaceAll(letter, "\r\n", "\n")
	letter = preamble.ReplaceAllString(letter, "")
	letter = blankRuns.ReplaceAllString(letter, "\n\n")
	letter = horizontalSpace.ReplaceAllString(letter, " ")
	letter = trailingSpace.ReplaceAllString(letter, "")
	return strings.TrimSpace(letter)
}
