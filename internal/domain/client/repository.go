package client

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/types"
)

// Repository defines the interface for client data access
type Repository interface {
	List(ctx context.Context, filter types.RecordFilter) ([]*Client, error)
	Get(ctx context.Context, id int) (*Client, error)
	// Save inserts or updates the client and returns its identifier
	Save(ctx context.Context, c *Client) (int, error)
	Delete(ctx context.Context, id int) error
}
