package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/structuring"
	"github.com/jonathan/resume-builder/internal/types"
)

// multipartOverhead is allowed on top of the upload limit for form framing.
const multipartOverhead = 1 << 20

// StructureResponse is returned by POST /structure
type StructureResponse struct {
	Record types.ResumeRecord `json:"record"`
	Stats  structuring.Stats  `json:"stats"`
	ID     *uuid.UUID         `json:"id,omitempty"`
}

// UploadResponse is returned by the document upload endpoints
type UploadResponse struct {
	Text     string              `json:"text"`
	Record   types.ResumeRecord  `json:"record"`
	Stats    structuring.Stats   `json:"stats"`
	Metadata *ingestion.Metadata `json:"metadata"`
	ID       *uuid.UUID          `json:"id,omitempty"`
}

// handleStructure structures raw resume text sent as JSON
func (s *Server) handleStructure(w http.ResponseWriter, r *http.Request) {
	var req types.StructureRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	text := ingestion.CleanText(req.Text)
	record, stats := structuring.StructureWithStats(text)
	resp := StructureResponse{Record: record, Stats: stats}

	if req.Persist {
		source := req.Source
		if source == "" {
			source = db.SourceManual
		}
		id, err := s.persist(r.Context(), source, "", text, record, stats)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.ID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleParseResume extracts and structures an uploaded PDF, DOCX or text resume
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	s.handleUpload(w, r, db.SourceUpload, "")
}

// handleParseLinkedInPDF extracts and structures a LinkedIn profile PDF export
func (s *Server) handleParseLinkedInPDF(w http.ResponseWriter, r *http.Request) {
	s.handleUpload(w, r, db.SourceLinkedIn, ingestion.FormatPDF)
}

// handleUpload reads the multipart "file" field, ingests it and structures the
// text. When only is set, other formats are rejected.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request, source string, only ingestion.Format) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, err)
			return
		}
		s.writeError(w, r, &ErrValidation{Field: "file", Message: "expected a multipart form upload"})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "file", Message: "no file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	if only != "" {
		format, err := ingestion.DetectFormat(header.Filename)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if format != only {
			s.writeError(w, r, &ingestion.UnsupportedFormatError{Name: header.Filename, Ext: "." + string(format)})
			return
		}
	}

	text, meta, err := s.ingester.IngestReader(r.Context(), header.Filename, file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	record, stats := structuring.StructureWithStats(text)
	resp := UploadResponse{Text: text, Record: record, Stats: stats, Metadata: meta}

	if persist, _ := strconv.ParseBool(r.FormValue("persist")); persist {
		id, err := s.persist(r.Context(), source, header.Filename, text, record, stats)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.ID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// persist saves a structured document, deduplicated by content hash.
func (s *Server) persist(ctx context.Context, source, fileName, text string, record types.ResumeRecord, stats structuring.Stats) (uuid.UUID, error) {
	if s.documents == nil {
		return uuid.Nil, &ErrUnavailable{Feature: "document storage"}
	}
	return s.documents.SaveDocument(ctx, &db.Document{
		Source:      source,
		FileName:    fileName,
		ContentHash: ingestion.ContentHash(text),
		RawText:     text,
		Record:      record,
		Stats:       &stats,
	})
}
