package coverletter

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/llm"
	"resume-coach/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the cover letter service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches cover letter routes.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/generate-cover-letter", h.generate)
}

type generateRequest struct {
	Resume string `json:"resume"`
	Job    string `json:"job"`
}

type generateResponse struct {
	Letter string `json:"letter"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	letter, err := h.Svc.Generate(c.Request.Context(), req.Resume, req.Job)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Resume and job description are required", nil)
		case errors.Is(err, llm.ErrUpstreamUnavailable):
			respond.Error(c, http.StatusInternalServerError, "upstream_unavailable", "Failed to generate cover letter: AI service is not configured", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "upstream_error", "Failed to generate cover letter", nil)
		}
		return
	}

	respond.OK(c, generateResponse{Letter: letter})
}
