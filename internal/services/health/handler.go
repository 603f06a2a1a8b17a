package health

import (
	"github.com/gin-gonic/gin"

	"resume-coach/internal/shared/server/respond"
)

// Handler exposes the health service over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the root and health routes.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/", func(c *gin.Context) { respond.OK(c, h.Svc.Welcome()) })
	rg.GET("/healthz", func(c *gin.Context) { respond.OK(c, h.Svc.Status()) })
}
