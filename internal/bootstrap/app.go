package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/coverletter"
	"resume-coach/internal/critique"
	"resume-coach/internal/documents"
	"resume-coach/internal/interview"
	"resume-coach/internal/joblinks"
	"resume-coach/internal/llm"
	openai "resume-coach/internal/llm/openai"
	"resume-coach/internal/services/health"
	"resume-coach/internal/shared/config"
	"resume-coach/internal/shared/server"
	"resume-coach/internal/shared/server/middleware"
	"resume-coach/internal/shared/telemetry"
)

// App holds shared dependencies and the routed engine.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	LLM                llm.Completer
	CritiqueService    *critique.Service
	CoverLetterService *coverletter.Service
	InterviewService   *interview.Service
	JobLinksService    *joblinks.Service
	DocumentsService   *documents.Service
	HealthHandler      *health.Handler
	DocumentsHandler   *documents.Handler
	CritiqueHandler    *critique.Handler
	CoverLetterHandler *coverletter.Handler
	InterviewHandler   *interview.Handler
	JobLinksHandler    *joblinks.Handler
}

// Option customizes Build, mainly for tests.
type Option func(*App)

// WithCompleter replaces the completion client built from config.
func WithCompleter(c llm.Completer) Option {
	return func(a *App) { a.LLM = c }
}

// Build wires services, handlers and the router from cfg.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	client := openai.NewClient(openai.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})
	if !client.Configured() {
		telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{
			"env":    cfg.Env,
			"detail": "GROQ_API_KEY empty; critique and job links use heuristics, cover letters and interviews fail",
		})
	}

	app := &App{Config: cfg, LLM: client}
	for _, opt := range opts {
		opt(app)
	}

	configured := client.Configured()
	if app.LLM != llm.Completer(client) {
		configured = app.LLM != nil
	}
	buildServices(app, configured)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		HealthHandler:      app.HealthHandler,
		DocumentHandler:    app.DocumentsHandler,
		CritiqueHandler:    app.CritiqueHandler,
		CoverLetterHandler: app.CoverLetterHandler,
		InterviewHandler:   app.InterviewHandler,
		JobLinksHandler:    app.JobLinksHandler,
		RateLimiter:        middleware.NewRateLimiter(nil),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":            cfg.Env,
		"model":          client.Model(),
		"llm_configured": configured,
		"accepted_types": cfg.AcceptedExtensions,
	})
	return app, nil
}

func buildServices(app *App, llmConfigured bool) {
	app.CritiqueService = critique.NewService(app.LLM)
	app.CoverLetterService = coverletter.NewService(app.LLM)
	app.InterviewService = interview.NewService(app.LLM)
	app.JobLinksService = joblinks.NewService(app.LLM)
	app.DocumentsService = documents.NewService(app.Config.AcceptedExtensions, app.Config.MaxUploadBytes)

	app.HealthHandler = health.NewHandler(health.NewService(llmConfigured))
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService, app.CritiqueService)
	app.CritiqueHandler = critique.NewHandler(app.CritiqueService)
	app.CoverLetterHandler = coverletter.NewHandler(app.CoverLetterService)
	app.InterviewHandler = interview.NewHandler(app.InterviewService)
	app.JobLinksHandler = joblinks.NewHandler(app.JobLinksService)
}
