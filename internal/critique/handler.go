package critique

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the critique service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the text analysis route.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/analyze-resume", h.analyze)
}

type analyzeRequest struct {
	Resume string `json:"resume"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	resume := strings.TrimSpace(req.Resume)
	if resume == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Resume content is required", nil)
		return
	}

	respond.OK(c, h.Svc.Analyze(c.Request.Context(), resume))
}
