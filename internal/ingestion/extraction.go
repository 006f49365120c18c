package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
)

// MaxDocumentBytes is the default upload and file size limit (10 MiB)
const MaxDocumentBytes int64 = 10 << 20

// Format identifies a supported document type
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
)

var formatsByExt = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".txt":  FormatText,
	".text": FormatText,
	".md":   FormatText,
}

// DetectFormat maps a file name to its format by extension
func DetectFormat(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}
	return "", &UnsupportedFormatError{Name: name, Ext: ext}
}

// Extractor turns raw document bytes into plain text
type Extractor interface {
	Extract(ctx context.Context, name string, data []byte) (string, error)
}

// pdfTimeout bounds a single PDF parse
const pdfTimeout = 30 * time.Second

// PDFExtractor reads text from PDF documents with the eino PDF parser
type PDFExtractor struct {
	parser *pdf.PDFParser
}

// NewPDFExtractor creates a PDF extractor that returns the whole document as one text
func NewPDFExtractor(ctx context.Context) (*PDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF parser: %w", err)
	}
	return &PDFExtractor{parser: p}, nil
}

// Extract implements Extractor
func (e *PDFExtractor) Extract(ctx context.Context, name string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, pdfTimeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, bytes.NewReader(data), einoParser.WithURI(name))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Name: name, Cause: err}
	}
	if len(docs) == 0 {
		return "", &ExtractionError{Format: FormatPDF, Name: name, Cause: errors.New("parser returned no documents")}
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc != nil && strings.TrimSpace(doc.Content) != "" {
			parts = append(parts, doc.Content)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// DOCXExtractor reads paragraph text from the main part of a Word document
type DOCXExtractor struct{}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// Extract implements Extractor
func (DOCXExtractor) Extract(_ context.Context, name string, data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Name: name, Cause: err}
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ExtractionError{Format: FormatDOCX, Name: name, Cause: err}
		}
		defer func() { _ = rc.Close() }()

		body, err := io.ReadAll(io.LimitReader(rc, MaxDocumentBytes*4))
		if err != nil {
			return "", &ExtractionError{Format: FormatDOCX, Name: name, Cause: err}
		}
		return docxText(string(body)), nil
	}
	return "", &ExtractionError{Format: FormatDOCX, Name: name, Cause: errors.New("word/document.xml not found")}
}

// docxText converts WordprocessingML to lines, one per paragraph.
// Runs inside a paragraph are joined without separators.
func docxText(doc string) string {
	doc = docxParagraphEnd.ReplaceAllString(doc, "\n")
	doc = docxTab.ReplaceAllString(doc, "\t")
	doc = xmlTag.ReplaceAllString(doc, "")
	return html.UnescapeString(doc)
}

// TextExtractor passes plain text through unchanged
type TextExtractor struct{}

// Extract implements Extractor
func (TextExtractor) Extract(_ context.Context, _ string, data []byte) (string, error) {
	return string(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))), nil
}
