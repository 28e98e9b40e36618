// Package ledger records point-in-time snapshots of a user's line item
// values and answers questions about them. Creation validates the
// request, checks that every referenced line item belongs to the user,
// aggregates the totals and persists the snapshot with its items in one
// transaction.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/networth/pkg/cache"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/amirasaad/networth/pkg/service/ownership"
	"github.com/google/uuid"
)

// Service provides snapshot operations.
type Service struct {
	uow    repository.UnitOfWork
	cache  cache.DashboardCache
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new ledger Service.
func New(
	uow repository.UnitOfWork,
	dashboards cache.DashboardCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		cache:  dashboards,
		logger: logger,
		now:    time.Now,
	}
}

// CreateSnapshot validates req and stores it as a new snapshot of userID.
// Invalid input and unresolvable or foreign line items are rejected
// before anything is written.
func (s *Service) CreateSnapshot(
	ctx context.Context,
	userID uuid.UUID,
	req *dto.SnapshotRequest,
) (*dto.SnapshotRead, error) {
	logger := s.logger.With("handler", "CreateSnapshot", "user_id", userID)
	now := s.now().UTC()

	date, err := snapshot.ParseDate(req.Date, now)
	if err != nil {
		logger.Warn("rejected snapshot", "reason", "date", "date", req.Date)
		return nil, err
	}
	if len(req.Items) == 0 {
		logger.Warn("rejected snapshot", "reason", "no items")
		return nil, snapshot.ErrNoItems
	}
	entries := make([]snapshot.Entry, 0, len(req.Items))
	for _, it := range req.Items {
		e, err := snapshot.NewEntry(it.LineItemID, it.Value)
		if err != nil {
			logger.Warn("rejected snapshot", "reason", err, "line_item_id", it.LineItemID)
			return nil, err
		}
		entries = append(entries, e)
	}
	ids := snapshot.DistinctIDs(entries)

	created := &dto.SnapshotCreate{
		ID:        uuid.New(),
		UserID:    userID,
		Label:     snapshot.NormalizeText(req.Label),
		Note:      snapshot.NormalizeText(req.Note),
		Date:      date,
		CreatedAt: now,
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		lineItems, err := uow.LineItemRepository()
		if err != nil {
			return err
		}
		owners, err := lineItems.ListOwners(ctx, ids)
		if err != nil {
			return err
		}
		types, err := ownership.LineItems(userID, ids, owners)
		if err != nil {
			return err
		}
		totals := snapshot.Aggregate(entries, types)
		if err := totals.Validate(); err != nil {
			return err
		}
		created.TotalAssets = totals.TotalAssets
		created.TotalLiabs = totals.TotalLiabs
		created.NetWorth = totals.NetWorth

		snaps, err := uow.SnapshotRepository()
		if err != nil {
			return err
		}
		if err := snaps.Create(ctx, created); err != nil {
			return err
		}
		items := make([]*dto.SnapshotItemCreate, len(entries))
		for i, e := range entries {
			items[i] = &dto.SnapshotItemCreate{
				ID:         uuid.New(),
				SnapshotID: created.ID,
				LineItemID: e.LineItemID,
				Position:   i,
				Value:      e.Value,
			}
		}
		return snaps.CreateItems(ctx, items)
	})
	if err != nil {
		logger.Error("failed to create snapshot", "error", err)
		return nil, fmt.Errorf("create snapshot: %w", err)
	}
	cache.Invalidate(ctx, s.cache, userID, logger)
	logger.Info("snapshot created", "snapshot_id", created.ID, "items", len(entries), "net_worth", created.NetWorth.String())

	return &dto.SnapshotRead{
		ID:          created.ID,
		UserID:      created.UserID,
		Label:       created.Label,
		Note:        created.Note,
		Date:        created.Date,
		TotalAssets: created.TotalAssets,
		TotalLiabs:  created.TotalLiabs,
		NetWorth:    created.NetWorth,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// ListSnapshots returns the user's snapshots, newest date first, with
// their item counts.
func (s *Service) ListSnapshots(ctx context.Context, userID uuid.UUID) (list []*dto.SnapshotSummary, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		snaps, err := uow.SnapshotRepository()
		if err != nil {
			return err
		}
		list, err = snaps.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return list, nil
}

// GetSnapshot returns one of the user's snapshots with its items.
func (s *Service) GetSnapshot(ctx context.Context, userID, id uuid.UUID) (detail *dto.SnapshotDetail, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		snaps, err := uow.SnapshotRepository()
		if err != nil {
			return err
		}
		found, err := snaps.GetDetail(ctx, id)
		if err != nil {
			return err
		}
		detail, err = ownership.SnapshotDetail(userID, found)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return detail, nil
}

// Breakdown groups one of the user's snapshots by category.
func (s *Service) Breakdown(ctx context.Context, userID, id uuid.UUID) ([]snapshot.CategoryTotal, error) {
	detail, err := s.GetSnapshot(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return BreakdownOf(detail), nil
}

// DeleteSnapshot removes one of the user's snapshots and its items.
func (s *Service) DeleteSnapshot(ctx context.Context, userID, id uuid.UUID) error {
	logger := s.logger.With("handler", "DeleteSnapshot", "user_id", userID, "snapshot_id", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		snaps, err := uow.SnapshotRepository()
		if err != nil {
			return err
		}
		found, err := snaps.Get(ctx, id)
		if err != nil {
			return err
		}
		if _, err := ownership.Snapshot(userID, found); err != nil {
			return err
		}
		return snaps.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	cache.Invalidate(ctx, s.cache, userID, logger)
	logger.Info("snapshot deleted")
	return nil
}

// BreakdownOf projects a loaded snapshot onto its category groups.
func BreakdownOf(detail *dto.SnapshotDetail) []snapshot.CategoryTotal {
	lines := make([]snapshot.Line, len(detail.Items))
	for i, it := range detail.Items {
		c := it.LineItem.Category
		lines[i] = snapshot.Line{
			CategoryID:    c.ID,
			CategoryName:  c.Name,
			CategoryType:  category.Type(c.Type),
			CategoryColor: c.Color,
			LineItemID:    it.LineItemID,
			LineItemName:  it.LineItem.Name,
			Value:         it.Value,
		}
	}
	return snapshot.Breakdown(lines)
}
