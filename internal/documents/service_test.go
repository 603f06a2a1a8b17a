package documents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-coach/internal/extract"
)

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService(nil, 0)

	assert.Equal(t, []string{".pdf"}, svc.Accepted)
	assert.Equal(t, DefaultMaxBytes, svc.MaxBytes)
	assert.NotNil(t, svc.Extract)
}

func TestReadExtractsText(t *testing.T) {
	svc := stubService("hello resume", nil)

	doc, err := svc.Read(context.Background(), " cv.pdf ", strings.NewReader("%PDF"))

	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", doc.FileName)
	assert.Equal(t, ".pdf", doc.Extension)
	assert.Equal(t, int64(4), doc.SizeBytes)
	assert.Equal(t, "hello resume", doc.Text)
	assert.NotEmpty(t, doc.ID)
}

func TestReadRejects(t *testing.T) {
	svc := stubService("text", nil)
	svc.MaxBytes = 4

	_, err := svc.Read(context.Background(), "../etc/passwd.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Read(context.Background(), "   ", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Read(context.Background(), "resume.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = svc.Read(context.Background(), "resume.pdf", strings.NewReader("12345"))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = svc.Read(context.Background(), "resume.pdf", strings.NewReader("1234"))
	assert.NoError(t, err)
}

func TestReadWithRealExtractorReportsMalformedPDF(t *testing.T) {
	svc := NewService([]string{".pdf"}, 1024)

	_, err := svc.Read(context.Background(), "resume.pdf", strings.NewReader("not a pdf"))

	assert.ErrorIs(t, err, extract.ErrExtraction)
}
