package snapshot

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for snapshots and their items.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	// Create inserts the snapshot row only.
	Create(ctx context.Context, create *dto.SnapshotCreate) error

	// CreateItems inserts the item rows of a snapshot.
	CreateItems(ctx context.Context, items []*dto.SnapshotItemCreate) error

	Get(ctx context.Context, id uuid.UUID) (*dto.SnapshotRead, error)

	// GetDetail retrieves a snapshot with its items, line items and
	// categories, ordered by category sortOrder then submission order.
	GetDetail(ctx context.Context, id uuid.UUID) (*dto.SnapshotDetail, error)

	// ListByUser returns the user's snapshots newest date first, each with
	// its item count.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.SnapshotSummary, error)

	// ListDetailsByUser returns every snapshot of the user with items,
	// oldest createdAt first.
	ListDetailsByUser(ctx context.Context, userID uuid.UUID) ([]*dto.SnapshotDetail, error)

	// Delete removes the snapshot; its items go with it.
	Delete(ctx context.Context, id uuid.UUID) error
}
