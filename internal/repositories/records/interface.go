package records

import (
	"context"

	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// Repository describes the persistence operations for note records.
// Implementations are backed by a local SQLite database.
type Repository interface {
	// GetAll returns every record; order is unspecified, callers sort.
	GetAll(ctx context.Context) ([]models.Record, error)

	// Put inserts a new record or fully replaces the one with the same Id.
	Put(ctx context.Context, record *models.Record) error

	// PutMany upserts all records inside one transaction, all-or-nothing.
	PutMany(ctx context.Context, records []models.Record) error

	// Delete removes a record by id. A missing id is a no-op, not an error.
	Delete(ctx context.Context, id string) error
}
