package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/coverletter"
	"resume-coach/internal/critique"
	"resume-coach/internal/documents"
	"resume-coach/internal/interview"
	"resume-coach/internal/joblinks"
	"resume-coach/internal/services/health"
	"resume-coach/internal/shared/config"
	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/server/middleware"
	"resume-coach/internal/shared/server/respond"
	"resume-coach/internal/shared/telemetry"
)

// RouterDeps lists the handlers mounted on the engine.
type RouterDeps struct {
	Config             config.Config
	HealthHandler      *health.Handler
	DocumentHandler    *documents.Handler
	CritiqueHandler    *critique.Handler
	CoverLetterHandler *coverletter.Handler
	InterviewHandler   *interview.Handler
	JobLinksHandler    *joblinks.Handler
	RateLimiter        *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Endpoints that reach the completion service sit behind the rate limiter.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.HandleMethodNotAllowed = true
	// Forwarding headers are only honoured from configured proxies; with
	// none configured the client IP is the socket peer.
	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		telemetry.Warn("router.trusted_proxies_invalid", map[string]any{
			"proxies": deps.Config.TrustedProxies,
			"err":     err,
		})
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})
	r.NoMethod(func(c *gin.Context) {
		respond.Error(c, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil)
	})

	r.GET("/metrics", metrics.Handler())
	if deps.HealthHandler != nil {
		deps.HealthHandler.RegisterRoutes(r)
	}

	limited := r.Group("", middleware.RateLimit(middleware.RateLimitRule{
		Rate:  deps.Config.RateLimitRPS,
		Burst: deps.Config.RateLimitBurst,
	}, deps.RateLimiter))
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(limited)
	}
	if deps.CritiqueHandler != nil {
		deps.CritiqueHandler.RegisterRoutes(limited)
	}
	if deps.CoverLetterHandler != nil {
		deps.CoverLetterHandler.RegisterRoutes(limited)
	}
	if deps.InterviewHandler != nil {
		deps.InterviewHandler.RegisterRoutes(limited)
	}
	if deps.JobLinksHandler != nil {
		deps.JobLinksHandler.RegisterRoutes(limited)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
