// Package ownership answers whether a user owns a stored entity. Every
// check reports a foreign entity exactly like a missing one.
package ownership

import (
	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Category returns c when it exists and belongs to userID.
func Category(userID uuid.UUID, c *dto.CategoryRead) (*dto.CategoryRead, error) {
	if c == nil || c.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// LineItem returns li when it exists and its category belongs to userID.
func LineItem(userID uuid.UUID, li *dto.LineItemOwner) (*dto.LineItemOwner, error) {
	if li == nil || li.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return li, nil
}

// Snapshot returns s when it exists and belongs to userID.
func Snapshot(userID uuid.UUID, s *dto.SnapshotRead) (*dto.SnapshotRead, error) {
	if s == nil || s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// SnapshotDetail is Snapshot for a snapshot loaded with its items.
func SnapshotDetail(userID uuid.UUID, s *dto.SnapshotDetail) (*dto.SnapshotDetail, error) {
	if s == nil || s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// LineItems checks that every requested id was resolved and is owned by
// userID, and returns the category type of each. owners is what storage
// returned for requested; anything short of a full match is
// snapshot.ErrInvalidLineItems.
func LineItems(
	userID uuid.UUID,
	requested []uuid.UUID,
	owners []*dto.LineItemOwner,
) (map[uuid.UUID]category.Type, error) {
	if len(owners) != len(requested) {
		return nil, snapshot.ErrInvalidLineItems
	}
	types := make(map[uuid.UUID]category.Type, len(owners))
	for _, o := range owners {
		if o == nil || o.UserID != userID {
			return nil, snapshot.ErrInvalidLineItems
		}
		types[o.ID] = category.Type(o.CategoryType)
	}
	for _, id := range requested {
		if _, ok := types[id]; !ok {
			return nil, snapshot.ErrInvalidLineItems
		}
	}
	return types, nil
}
