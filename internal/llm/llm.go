package llm

import (
	"context"
	"errors"
	"fmt"
)

// Completer abstracts the chat-completion endpoint.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var (
	// ErrUpstreamUnavailable is returned without any network call when no credential is configured.
	ErrUpstreamUnavailable = errors.New("llm credential not configured")
	// ErrUpstream matches every *UpstreamError via errors.Is.
	ErrUpstream = errors.New("llm upstream error")
)

// UpstreamError reports a failed completion call: transport, timeout, HTTP status or response shape.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("llm upstream error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("llm upstream error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrUpstream) match any UpstreamError.
func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

type useCaseKey struct{}

// WithUseCase tags ctx with the use case name reported in metrics and spans.
func WithUseCase(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, useCaseKey{}, name)
}

// UseCaseFromContext returns the use case tag, or "unknown".
func UseCaseFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(useCaseKey{}).(string); ok && name != "" {
		return name
	}
	return "unknown"
}
