// Package ingestion extracts plain text from uploaded resume documents and
// normalizes it for structuring.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Ingester extracts, size-checks and cleans documents
type Ingester struct {
	extractors map[Format]Extractor
	maxBytes   int64
}

// Option configures an Ingester
type Option func(*Ingester)

// WithMaxBytes overrides the document size limit
func WithMaxBytes(n int64) Option {
	return func(i *Ingester) {
		if n > 0 {
			i.maxBytes = n
		}
	}
}

// WithExtractor registers or replaces the extractor for a format
func WithExtractor(f Format, e Extractor) Option {
	return func(i *Ingester) {
		i.extractors[f] = e
	}
}

// NewIngester creates an Ingester with the PDF, DOCX and plain-text extractors
func NewIngester(ctx context.Context, opts ...Option) (*Ingester, error) {
	i := &Ingester{
		extractors: map[Format]Extractor{
			FormatDOCX: DOCXExtractor{},
			FormatText: TextExtractor{},
		},
		maxBytes: MaxDocumentBytes,
	}
	for _, opt := range opts {
		opt(i)
	}

	if _, ok := i.extractors[FormatPDF]; !ok {
		p, err := NewPDFExtractor(ctx)
		if err != nil {
			return nil, err
		}
		i.extractors[FormatPDF] = p
	}
	return i, nil
}

// MaxBytes returns the configured size limit
func (i *Ingester) MaxBytes() int64 {
	return i.maxBytes
}

// Ingest extracts text from data, named name, and cleans it
func (i *Ingester) Ingest(ctx context.Context, name string, data []byte) (string, *Metadata, error) {
	if int64(len(data)) > i.maxBytes {
		return "", nil, &TooLargeError{Size: int64(len(data)), Limit: i.maxBytes}
	}

	format, err := DetectFormat(name)
	if err != nil {
		return "", nil, err
	}
	extractor, ok := i.extractors[format]
	if !ok {
		return "", nil, &UnsupportedFormatError{Name: name, Ext: filepath.Ext(name)}
	}

	raw, err := extractor.Extract(ctx, name, data)
	if err != nil {
		return "", nil, err
	}

	cleaned := CleanText(raw)
	meta := NewMetadata(cleaned, name, format, int64(len(data)))
	return cleaned, meta, nil
}

// IngestReader reads at most the size limit from r and ingests it
func (i *Ingester) IngestReader(ctx context.Context, name string, r io.Reader) (string, *Metadata, error) {
	data, err := io.ReadAll(io.LimitReader(r, i.maxBytes+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if int64(len(data)) > i.maxBytes {
		return "", nil, &TooLargeError{Size: int64(len(data)), Limit: i.maxBytes}
	}
	return i.Ingest(ctx, name, data)
}

// IngestFile reads a document from disk and ingests it
func (i *Ingester) IngestFile(ctx context.Context, path string) (string, *Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() > i.maxBytes {
		return "", nil, &TooLargeError{Size: info.Size(), Limit: i.maxBytes}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return i.IngestReader(ctx, filepath.Base(path), f)
}
