package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository defines persistence operations for price-list items
type ItemRepository interface {
	// FindByID finds an item by its ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// FindAll returns all items ordered by name
	FindAll(ctx context.Context) ([]Item, error)
	// Save persists a new item
	Save(ctx context.Context, item *Item) error
	// Update persists changes to an existing item
	Update(ctx context.Context, item *Item) error
	// Count returns the number of items
	Count(ctx context.Context) (int64, error)
}
