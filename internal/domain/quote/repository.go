package quote

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for quote documents. Documents
// are appended per version and soft-deleted via the active flag; partial
// updates cover the mutable columns only.
type Repository interface {
	// FindByID finds a document by its ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Quote, error)
	// FindLatestInChain returns the document with the highest version among
	// all documents of the chain, regardless of the active flag.
	FindLatestInChain(ctx context.Context, chainID uuid.UUID) (*Quote, error)
	// ListActive returns up to limit active documents, most recently updated first
	ListActive(ctx context.Context, limit int) ([]Quote, error)
	// Save persists a new document version
	Save(ctx context.Context, q *Quote) error
	// UpdateContent persists the mutable content columns (client, lines, discount)
	UpdateContent(ctx context.Context, q *Quote) error
	// UpdatePDFPath persists only the rendered artifact path
	UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error
	// SetActive persists only the active flag
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// NumberSequence allocates yearly document numbers. Allocation must be
// atomic: two concurrent calls for the same year never observe the same value.
type NumberSequence interface {
	// Next returns the next sequence value for the given year, starting at 1
	Next(ctx context.Context, year int) (int64, error)
}
