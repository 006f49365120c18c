package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMetadata(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	meta := NewMetadata("Jane Doe\n\nSKILLS\nGo, Café", "resume.pdf", FormatPDF, 2048)

	assert.Equal(t, "resume.pdf", meta.FileName)
	assert.Equal(t, FormatPDF, meta.Format)
	assert.Equal(t, int64(2048), meta.Bytes)
	assert.Equal(t, 3, meta.Lines, "blank lines are not counted")
	assert.Equal(t, 25, meta.Characters, "characters are runes, not bytes")
	assert.Len(t, meta.Hash, 64)
	assert.False(t, meta.ExtractedAt.Before(before))
	assert.Equal(t, time.UTC, meta.ExtractedAt.Location())
}

func TestNewMetadata_EmptyText(t *testing.T) {
	meta := NewMetadata("", "empty.txt", FormatText, 0)
	assert.Equal(t, 0, meta.Lines)
	assert.Equal(t, 0, meta.Characters)
}

func TestContentHash(t *testing.T) {
	assert.Equal(t, ContentHash("same"), ContentHash("same"))
	assert.NotEqual(t, ContentHash("one"), ContentHash("two"))
	// sha256 of the empty string
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentHash(""))
}
