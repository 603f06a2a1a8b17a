package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestExtractTextFromBytes_MalformedPDF(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("definitely not a pdf"), "resume.pdf")
	if err == nil {
		t.Fatal("expected extraction error for malformed pdf")
	}
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestExtractTextFromBytes_EmptyBody(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), nil, "resume.pdf")
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestExtractTextFromBytes_UnsupportedExtension(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("hello"), "notes.txt")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestExtractTextFromBytes_Docx(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Software Engineer ﬁrst</w:t></w:r></w:p></w:body></w:document>`)

	text, err := ExtractTextFromBytes(context.Background(), data, "Resume.DOCX")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if text != "Jane Doe\nSoftware Engineer first" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextFromBytes_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ExtractTextFromBytes(ctx, []byte("x"), "a.pdf"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
