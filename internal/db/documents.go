package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/ingestion"
)

// SaveDocument stores a document. Documents are unique by the hash of their raw
// text; saving the same text again updates the existing row and returns its ID.
func (db *DB) SaveDocument(ctx context.Context, doc *Document) (uuid.UUID, error) {
	if doc.ContentHash == "" {
		doc.ContentHash = ingestion.ContentHash(doc.RawText)
	}
	if doc.Source == "" {
		doc.Source = SourceManual
	}

	recordJSON, err := json.Marshal(doc.Record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	var statsJSON []byte
	if doc.Stats != nil {
		if statsJSON, err = json.Marshal(doc.Stats); err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal stats: %w", err)
		}
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO structured_documents (source, file_name, content_hash, raw_text, record, stats)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (content_hash) DO UPDATE
		   SET source = $1, file_name = $2, record = $5, stats = $6, updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		doc.Source, doc.FileName, doc.ContentHash, doc.RawText, recordJSON, statsJSON,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save document: %w", err)
	}
	return doc.ID, nil
}

const documentColumns = `id, source, file_name, content_hash, raw_text, record, stats, created_at, updated_at`

// GetDocument retrieves a document by ID. It returns nil, nil when absent.
func (db *DB) GetDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM structured_documents WHERE id = $1`, id)
	doc, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	return doc, nil
}

// GetDocumentByHash retrieves a document by the hash of its raw text. It
// returns nil, nil when absent.
func (db *DB) GetDocumentByHash(ctx context.Context, hash string) (*Document, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM structured_documents WHERE content_hash = $1`, hash)
	doc, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get document by hash: %w", err)
	}
	return doc, nil
}

func scanDocument(row pgx.Row) (*Document, error) {
	var (
		doc        Document
		recordJSON []byte
		statsJSON  []byte
	)
	err := row.Scan(&doc.ID, &doc.Source, &doc.FileName, &doc.ContentHash, &doc.RawText,
		&recordJSON, &statsJSON, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(recordJSON, &doc.Record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if len(statsJSON) > 0 {
		if err := json.Unmarshal(statsJSON, &doc.Stats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
		}
	}
	return &doc, nil
}

// buildListQuery returns the list query and its arguments for filters.
func buildListQuery(filters DocumentFilters) (string, []any) {
	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, source, file_name, content_hash, COALESCE(record->'personalInfo'->>'name', ''), created_at
		FROM structured_documents WHERE 1=1`)
	args := []any{}
	argNum := 1

	if filters.Source != "" {
		sb.WriteString(fmt.Sprintf(" AND source = $%d", argNum))
		args = append(args, filters.Source)
		argNum++
	}

	sb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1))
	args = append(args, limit, offset)
	return sb.String(), args
}

// ListDocuments retrieves document summaries, newest first
func (db *DB) ListDocuments(ctx context.Context, filters DocumentFilters) ([]DocumentSummary, error) {
	query, args := buildListQuery(filters)
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []DocumentSummary{}
	for rows.Next() {
		var d DocumentSummary
		if err := rows.Scan(&d.ID, &d.Source, &d.FileName, &d.ContentHash, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// DeleteDocument deletes a document by ID
func (db *DB) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM structured_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}
