package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-coach/internal/critique"
	"resume-coach/internal/extract"
	"resume-coach/internal/llm"
)

type unavailableCompleter struct{}

func (unavailableCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return "", llm.ErrUpstreamUnavailable
}

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc, critique.NewService(unavailableCompleter{})).RegisterRoutes(r)
	return r
}

func stubService(text string, err error) *Service {
	svc := NewService([]string{".pdf"}, 1024)
	svc.Extract = func(ctx context.Context, data []byte, fileName string) (string, error) {
		return text, err
	}
	return svc
}

func multipartBody(t *testing.T, field, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func post(t *testing.T, r *gin.Engine, path, field, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, field, fileName, content)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestUploadResumeWithoutCredentialUsesFallback(t *testing.T) {
	r := newTestRouter(stubService("Experienced in Python and React. Increased deployment speed by 40%.", nil))

	resp := post(t, r, "/upload-resume", "file", "resume.pdf", []byte("%PDF-1.4 stub"))

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Feedback string         `json:"feedback"`
		Scores   map[string]int `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Contains(t, body.Feedback, "Resume Analysis Report")
	assert.Equal(t, map[string]int{"Format": 6, "Content": 6, "Skills": 8, "Impact": 7, "Overall": 7}, body.Scores)
}

func TestExtractResume(t *testing.T) {
	r := newTestRouter(stubService("Jane Doe\nGo developer", nil))

	resp := post(t, r, "/extract-resume", "file", "Resume.PDF", []byte("%PDF-1.4 stub"))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"text":"Jane Doe\nGo developer","score":[]}`, resp.Body.String())
}

func TestUploadErrors(t *testing.T) {
	tests := []struct {
		name     string
		svc      *Service
		field    string
		fileName string
		content  []byte
		status   int
		code     string
	}{
		{name: "wrong extension", svc: stubService("text", nil), field: "file", fileName: "resume.docx", content: []byte("x"), status: http.StatusBadRequest, code: "validation_error"},
		{name: "missing file field", svc: stubService("text", nil), field: "upload", fileName: "resume.pdf", content: []byte("x"), status: http.StatusBadRequest, code: "validation_error"},
		{name: "too large", svc: stubService("text", nil), field: "file", fileName: "resume.pdf", content: bytes.Repeat([]byte("a"), 2048), status: http.StatusRequestEntityTooLarge, code: "file_too_large"},
		{name: "extraction failure", svc: stubService("", fmt.Errorf("%w: malformed", extract.ErrExtraction)), field: "file", fileName: "resume.pdf", content: []byte("x"), status: http.StatusInternalServerError, code: "extraction_error"},
		{name: "unexpected failure", svc: stubService("", errors.New("boom")), field: "file", fileName: "resume.pdf", content: []byte("x"), status: http.StatusInternalServerError, code: "internal"},
	}

	for _, tt := range tests {
		tt := tt
		for _, path := range []string{"/upload-resume", "/extract-resume"} {
			t.Run(tt.name+path, func(t *testing.T) {
				resp := post(t, newTestRouter(tt.svc), path, tt.field, tt.fileName, tt.content)
				assert.Equal(t, tt.status, resp.Code)

				var body struct {
					Error struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
				assert.Equal(t, tt.code, body.Error.Code)
			})
		}
	}
}

func TestAcceptedLabel(t *testing.T) {
	assert.Equal(t, "PDF", acceptedLabel([]string{".pdf"}))
	assert.Equal(t, "PDF/DOCX", acceptedLabel([]string{".pdf", ".docx"}))
}
