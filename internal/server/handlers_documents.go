package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
)

// DocumentListResponse is returned by GET /documents
type DocumentListResponse struct {
	Documents []db.DocumentSummary `json:"documents"`
	Count     int                  `json:"count"`
	Limit     int                  `json:"limit"`
	Offset    int                  `json:"offset"`
}

// handleListDocuments lists stored documents, newest first
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.documents == nil {
		s.writeError(w, r, &ErrUnavailable{Feature: "document storage"})
		return
	}

	filters, err := parseDocumentFilters(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	docs, err := s.documents.ListDocuments(r.Context(), filters)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if docs == nil {
		docs = []db.DocumentSummary{}
	}

	s.jsonResponse(w, http.StatusOK, DocumentListResponse{
		Documents: docs,
		Count:     len(docs),
		Limit:     filters.Limit,
		Offset:    filters.Offset,
	})
}

// parseDocumentFilters reads source, limit and offset query parameters.
func parseDocumentFilters(r *http.Request) (db.DocumentFilters, error) {
	q := r.URL.Query()
	filters := db.DocumentFilters{Source: q.Get("source"), Limit: db.DefaultListLimit}

	switch filters.Source {
	case "", db.SourceGenerated, db.SourceUpload, db.SourceLinkedIn, db.SourceManual:
	default:
		return filters, &ErrValidation{Field: "source", Message: "unknown source " + strconv.Quote(filters.Source)}
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > db.MaxListLimit {
			return filters, &ErrValidation{Field: "limit", Message: "must be between 1 and " + strconv.Itoa(db.MaxListLimit)}
		}
		filters.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filters, &ErrValidation{Field: "offset", Message: "must be a non-negative integer"}
		}
		filters.Offset = offset
	}
	return filters, nil
}

// handleGetDocument returns one stored document
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	if s.documents == nil {
		s.writeError(w, r, &ErrUnavailable{Feature: "document storage"})
		return
	}

	id, err := parseDocumentID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc, err := s.documents.GetDocument(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if doc == nil {
		s.writeError(w, r, &db.NotFoundError{ID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

// handleDeleteDocument deletes one stored document
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if s.documents == nil {
		s.writeError(w, r, &ErrUnavailable{Feature: "document storage"})
		return
	}

	id, err := parseDocumentID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.documents.DeleteDocument(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseDocumentID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid document ID format"}
	}
	return id, nil
}
