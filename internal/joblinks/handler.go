package joblinks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the job links service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job link routes.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/generate-links", h.generate)
}

type generateRequest struct {
	Resume string `json:"resume"`
}

type aiResponse struct {
	SearchLinks []SearchLink `json:"search_links"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Generate(c.Request.Context(), req.Resume)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Resume content is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to generate job links", nil)
		return
	}

	if res.Source == SourceAI {
		respond.OK(c, aiResponse{SearchLinks: res.SearchLinks})
		return
	}
	respond.OK(c, res)
}
