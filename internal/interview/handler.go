package interview

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/llm"
	"resume-coach/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the interview service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview trainer routes.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/interview-trainer", h.train)
}

type trainRequest struct {
	Resume string `json:"resume"`
	Job    string `json:"job"`
}

type trainResponse struct {
	Pairs []QAPair `json:"pairs"`
}

func (h *Handler) train(c *gin.Context) {
	var req trainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	pairs, err := h.Svc.Prepare(c.Request.Context(), req.Resume, req.Job)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Both resume and job description are required", nil)
		case errors.Is(err, llm.ErrUpstreamUnavailable):
			respond.Error(c, http.StatusInternalServerError, "upstream_unavailable", "AI service is not configured", nil)
		case errors.Is(err, ErrNoQAFound):
			respond.Error(c, http.StatusInternalServerError, "no_pairs_found", "Could not parse interview questions from AI response", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "upstream_error", "Failed to get AI response for interview questions", nil)
		}
		return
	}

	respond.OK(c, trainResponse{Pairs: pairs})
}
