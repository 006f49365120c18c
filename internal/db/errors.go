package db

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError is returned when a document does not exist
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document not found: %s", e.ID)
}
