package lineitem

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for line items.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, create *dto.LineItemCreate) error
	Update(ctx context.Context, id uuid.UUID, update *dto.LineItemUpdate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.LineItemRead, error)

	// GetOwner returns the line item joined to its category's owner.
	GetOwner(ctx context.Context, id uuid.UUID) (*dto.LineItemOwner, error)

	// ListOwners returns the line items among ids that exist, each joined
	// to its category's owner and type. Missing ids are simply absent.
	ListOwners(ctx context.Context, ids []uuid.UUID) ([]*dto.LineItemOwner, error)
}
