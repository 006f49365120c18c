package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"
)

// Metadata describes an ingested document and the text extracted from it.
type Metadata struct {
	FileName    string    `json:"file_name,omitempty"`
	Format      Format    `json:"format"`
	Bytes       int64     `json:"bytes"`
	Lines       int       `json:"lines"`
	Characters  int       `json:"characters"`
	ExtractedAt time.Time `json:"extracted_at"`
	// Hash is the SHA256 hex digest of the cleaned text. Identical resumes
	// uploaded in different formats share a hash.
	Hash string `json:"hash"`
}

// NewMetadata describes text extracted from a size-byte file.
func NewMetadata(text, fileName string, format Format, size int64) *Metadata {
	return &Metadata{
		FileName:    fileName,
		Format:      format,
		Bytes:       size,
		Lines:       countLines(text),
		Characters:  utf8.RuneCountInString(text),
		ExtractedAt: time.Now().UTC().Truncate(time.Second),
		Hash:        ContentHash(text),
	}
}

// countLines counts non-blank lines.
func countLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// ContentHash returns the SHA256 hex digest of content
func ContentHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
