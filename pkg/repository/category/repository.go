package category

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for categories.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, create *dto.CategoryCreate) error
	Update(ctx context.Context, id uuid.UUID, update *dto.CategoryUpdate) error

	// Get retrieves a category with its line items.
	Get(ctx context.Context, id uuid.UUID) (*dto.CategoryRead, error)

	// ListByUser returns the user's categories by sortOrder then
	// createdAt, each with its line items oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.CategoryRead, error)

	// MaxSortOrder returns the highest sortOrder among the user's
	// categories; ok is false when the user has none.
	MaxSortOrder(ctx context.Context, userID uuid.UUID) (max int, ok bool, err error)
}
