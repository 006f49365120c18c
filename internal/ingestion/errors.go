package ingestion

import "fmt"

// UnsupportedFormatError is returned for file types no extractor handles
type UnsupportedFormatError struct {
	Name string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("unsupported file format: %s has no extension (supported: .pdf, .docx, .txt, .md)", e.Name)
	}
	return fmt.Sprintf("unsupported file format %q (supported: .pdf, .docx, .txt, .md)", e.Ext)
}

// TooLargeError is returned when a document exceeds the upload limit
type TooLargeError struct {
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("document too large: %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
}

// ExtractionError wraps a failure inside a format extractor
type ExtractionError struct {
	Format Format
	Name   string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract %s text from %s: %v", e.Format, e.Name, e.Cause)
	}
	return fmt.Sprintf("failed to extract %s text from %s", e.Format, e.Name)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
