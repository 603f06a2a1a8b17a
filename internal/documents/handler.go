package documents

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/critique"
	"resume-coach/internal/extract"
	"resume-coach/internal/shared/server/respond"
)

// multipartOverhead leaves room for form boundaries around the file part.
const multipartOverhead = 1 << 20

// Handler wires HTTP handlers to the document and critique services.
type Handler struct {
	Svc      *Service
	Critique *critique.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, critiqueSvc *critique.Service) *Handler {
	return &Handler{Svc: svc, Critique: critiqueSvc}
}

// RegisterRoutes attaches upload routes.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/upload-resume", h.upload)
	rg.POST("/extract-resume", h.extract)
}

func (h *Handler) upload(c *gin.Context) {
	doc, ok := h.read(c)
	if !ok {
		return
	}
	respond.OK(c, h.Critique.Analyze(c.Request.Context(), doc.Text))
}

func (h *Handler) extract(c *gin.Context) {
	doc, ok := h.read(c)
	if !ok {
		return
	}
	respond.OK(c, toExtractResponse(doc))
}

// read parses the multipart "file" field and extracts its text, writing the
// error response itself when that fails.
func (h *Handler) read(c *gin.Context) (Document, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Svc.MaxBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds upload limit", nil)
			return Document{}, false
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return Document{}, false
	}
	if !h.Svc.Accepts(fileHeader.Filename) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only "+acceptedLabel(h.Svc.Accepted)+" files are supported", gin.H{"accepted": h.Svc.Accepted})
		return Document{}, false
	}
	if fileHeader.Size > h.Svc.MaxBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds upload limit", nil)
		return Document{}, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return Document{}, false
	}
	defer file.Close()

	doc, err := h.Svc.Read(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnsupportedType), errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrTooLarge):
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds upload limit", nil)
		case errors.Is(err, extract.ErrExtraction):
			respond.Error(c, http.StatusInternalServerError, "extraction_error", "Error processing file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "Error processing file", nil)
		}
		return Document{}, false
	}
	return doc, true
}

// acceptedLabel renders [".pdf", ".docx"] as "PDF/DOCX".
func acceptedLabel(exts []string) string {
	labels := make([]string, len(exts))
	for i, e := range exts {
		labels[i] = strings.ToUpper(strings.TrimPrefix(e, "."))
	}
	return strings.Join(labels, "/")
}
