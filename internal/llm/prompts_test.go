package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestPromptsEmbedInputs(t *testing.T) {
	tests := []struct {
		name     string
		prompt   Prompt
		contains []string
	}{
		{
			name:     "critique",
			prompt:   ResumeCritiquePrompt("resume body"),
			contains: []string{"resume body", "**Formatting & Structure**", "N/10"},
		},
		{
			name:     "cover letter",
			prompt:   CoverLetterPrompt("resume body", "job body"),
			contains: []string{"resume body", "job body", "Dear Hiring Manager,"},
		},
		{
			name:     "interview",
			prompt:   InterviewPrompt("resume body", "job body"),
			contains: []string{"resume body", "job body", "Q1:", "A1:"},
		},
		{
			name:     "job links",
			prompt:   JobLinksPrompt("resume body"),
			contains: []string{"resume body", "search_links", "https://remoteok.com"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if strings.TrimSpace(tt.prompt.System) == "" || strings.TrimSpace(tt.prompt.User) == "" {
				t.Fatalf("expected non-empty prompt pair, got %+v", tt.prompt)
			}
			for _, want := range tt.contains {
				if !strings.Contains(tt.prompt.User, want) {
					t.Fatalf("expected user prompt to contain %q", want)
				}
			}
			if strings.Contains(tt.prompt.User, "{{") {
				t.Fatalf("unrendered placeholder in prompt")
			}
		})
	}
}

func TestPromptsNeverEmptyOnBlankInput(t *testing.T) {
	p := CoverLetterPrompt("  ", "")
	if !strings.Contains(p.User, "N/A") {
		t.Fatalf("expected N/A placeholder for blank inputs")
	}
}

func TestUpstreamErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &UpstreamError{StatusCode: 502, Err: errors.New("bad gateway")})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected errors.Is to match ErrUpstream")
	}
	var upstream *UpstreamError
	if !errors.As(err, &upstream) || upstream.StatusCode != 502 {
		t.Fatalf("expected errors.As to expose status 502")
	}
	if errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("upstream error must not match ErrUpstreamUnavailable")
	}
}

func TestUseCaseFromContext(t *testing.T) {
	if got := UseCaseFromContext(context.Background()); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
	ctx := WithUseCase(context.Background(), UseCaseInterview)
	if got := UseCaseFromContext(ctx); got != UseCaseInterview {
		t.Fatalf("expected %q, got %q", UseCaseInterview, got)
	}
}
