package health

// WelcomeMessage is served from the root route.
const WelcomeMessage = "🚀 Transform your career with AI-powered resume feedback, personalized cover letters, interview preparation, and job matching - all in one platform!"

// Service encapsulates health-related checks.
type Service struct {
	llmConfigured bool
}

// NewService constructs a new health service. llmConfigured reports whether
// a completion credential is present.
func NewService(llmConfigured bool) *Service {
	return &Service{llmConfigured: llmConfigured}
}

// Welcome returns the root payload.
func (s *Service) Welcome() map[string]string {
	return map[string]string{"message": WelcomeMessage}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]bool {
	return map[string]bool{"ok": true, "llm_configured": s.llmConfigured}
}
