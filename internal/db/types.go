package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/structuring"
	"github.com/jonathan/resume-builder/internal/types"
)

// Document sources
const (
	SourceGenerated = "generated"
	SourceUpload    = "upload"
	SourceLinkedIn  = "linkedin"
	SourceManual    = "manual"
)

// DefaultListLimit is used when DocumentFilters.Limit is zero
const DefaultListLimit = 50

// MaxListLimit caps DocumentFilters.Limit
const MaxListLimit = 200

// Document is a resume text together with its structured record
type Document struct {
	ID          uuid.UUID          `json:"id"`
	Source      string             `json:"source"`
	FileName    string             `json:"file_name,omitempty"`
	ContentHash string             `json:"content_hash"`
	RawText     string             `json:"raw_text"`
	Record      types.ResumeRecord `json:"record"`
	Stats       *structuring.Stats `json:"stats,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// DocumentSummary is a lightweight view of a document for listing
type DocumentSummary struct {
	ID          uuid.UUID `json:"id"`
	Source      string    `json:"source"`
	FileName    string    `json:"file_name,omitempty"`
	ContentHash string    `json:"content_hash"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentFilters holds optional filters for listing documents
type DocumentFilters struct {
	Source string
	Limit  int
	Offset int
}
