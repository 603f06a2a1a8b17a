package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-coach/internal/extract"
	"resume-coach/internal/shared/telemetry"
	"resume-coach/internal/shared/util"
)

// DefaultMaxBytes caps uploads when no limit is configured.
const DefaultMaxBytes int64 = 10 << 20

var (
	// ErrInvalidInput covers missing or badly named files.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedType is returned for extensions outside the accepted list.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrTooLarge is returned when the body exceeds MaxBytes.
	ErrTooLarge = errors.New("file too large")
)

// ExtractFunc turns raw document bytes into plain text.
type ExtractFunc func(ctx context.Context, data []byte, fileName string) (string, error)

// Service reads uploaded resumes and extracts their text. Nothing is stored.
type Service struct {
	Extract  ExtractFunc
	Accepted []string
	MaxBytes int64
}

// NewService constructs a Service backed by the extract package.
func NewService(accepted []string, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if len(accepted) == 0 {
		accepted = []string{".pdf"}
	}
	return &Service{Extract: extract.ExtractTextFromBytes, Accepted: accepted, MaxBytes: maxBytes}
}

// Accepts reports whether fileName carries an accepted extension.
func (s *Service) Accepts(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, a := range s.Accepted {
		if ext == a {
			return true
		}
	}
	return false
}

// Read validates the upload and extracts its text.
func (s *Service) Read(ctx context.Context, fileName string, r io.Reader) (Document, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !s.Accepts(name) {
		return Document{}, fmt.Errorf("%w: accepted types are %s", ErrUnsupportedType, strings.Join(s.Accepted, ", "))
	}

	data, err := io.ReadAll(io.LimitReader(r, s.MaxBytes+1))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if int64(len(data)) > s.MaxBytes {
		return Document{}, ErrTooLarge
	}

	text, err := s.Extract(ctx, data, name)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		FileName:   name,
		Extension:  strings.ToLower(filepath.Ext(name)),
		SizeBytes:  int64(len(data)),
		Text:       text,
		ReceivedAt: time.Now().UTC(),
	}
	telemetry.Info("documents.extracted", map[string]any{
		"document_id": doc.ID,
		"request_id":  telemetry.RequestIDFromContext(ctx),
		"file_name":   doc.FileName,
		"size_bytes":  doc.SizeBytes,
		"text_chars":  len(doc.Text),
		"fingerprint": util.ContentFingerprint(data),
	})
	return doc, nil
}
