package partner

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	// FindByID finds a client by its ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	// FindAll returns all clients ordered by creation time
	FindAll(ctx context.Context) ([]Client, error)
	// Save persists a new client
	Save(ctx context.Context, client *Client) error
	// Update persists changes to an existing client
	Update(ctx context.Context, client *Client) error
	// Count returns the number of clients
	Count(ctx context.Context) (int64, error)
}
