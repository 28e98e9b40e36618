package snapshot

import (
	"context"
	"errors"

	"github.com/amirasaad/networth/pkg/dto"
	repo "github.com/amirasaad/networth/pkg/repository/snapshot"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a snapshot repository bound to db, which may be a
// transaction.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// itemRow is the scan target of the item to line item to category join.
type itemRow struct {
	ID            uuid.UUID
	SnapshotID    uuid.UUID
	LineItemID    uuid.UUID
	Position      int
	Value         decimal.Decimal
	LineItemName  string
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryType  string
	CategoryColor string
}

type countRow struct {
	SnapshotID uuid.UUID
	Count      int64
}

const itemColumns = "snapshot_items.id, snapshot_items.snapshot_id, " +
	"snapshot_items.line_item_id, snapshot_items.position, snapshot_items.value, " +
	"line_items.name AS line_item_name, line_items.category_id, " +
	"categories.name AS category_name, categories.type AS category_type, " +
	"categories.color AS category_color"

func (r *repository) Create(
	ctx context.Context,
	create *dto.SnapshotCreate,
) error {
	s := &Snapshot{
		ID:          create.ID,
		UserID:      create.UserID,
		Label:       create.Label,
		Note:        create.Note,
		Date:        create.Date,
		TotalAssets: create.TotalAssets,
		TotalLiabs:  create.TotalLiabs,
		NetWorth:    create.NetWorth,
		CreatedAt:   create.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) CreateItems(
	ctx context.Context,
	items []*dto.SnapshotItemCreate,
) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]SnapshotItem, 0, len(items))
	for _, it := range items {
		rows = append(rows, SnapshotItem{
			ID:         it.ID,
			SnapshotID: it.SnapshotID,
			LineItemID: it.LineItemID,
			Position:   it.Position,
			Value:      it.Value,
		})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.SnapshotRead, error) {
	var s Snapshot
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&s), nil
}

func (r *repository) GetDetail(
	ctx context.Context,
	id uuid.UUID,
) (*dto.SnapshotDetail, error) {
	read, err := r.Get(ctx, id)
	if err != nil || read == nil {
		return nil, err
	}
	items, err := r.items(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return &dto.SnapshotDetail{
		SnapshotRead: *read,
		Items:        items[id],
	}, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.SnapshotSummary, error) {
	var snaps []Snapshot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&snaps).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.SnapshotSummary, 0, len(snaps))
	if len(snaps) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(snaps))
	for i := range snaps {
		ids = append(ids, snaps[i].ID)
	}
	var counts []countRow
	if err := r.db.WithContext(ctx).Model(&SnapshotItem{}).
		Select("snapshot_id, COUNT(*) AS count").
		Where("snapshot_id IN ?", ids).
		Group("snapshot_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		byID[c.SnapshotID] = c.Count
	}

	for i := range snaps {
		result = append(result, &dto.SnapshotSummary{
			SnapshotRead: *mapModelToDTO(&snaps[i]),
			Count:        dto.ItemCount{Items: byID[snaps[i].ID]},
		})
	}
	return result, nil
}

func (r *repository) ListDetailsByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.SnapshotDetail, error) {
	var snaps []Snapshot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&snaps).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.SnapshotDetail, 0, len(snaps))
	if len(snaps) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(snaps))
	for i := range snaps {
		ids = append(ids, snaps[i].ID)
	}
	items, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range snaps {
		result = append(result, &dto.SnapshotDetail{
			SnapshotRead: *mapModelToDTO(&snaps[i]),
			Items:        items[snaps[i].ID],
		})
	}
	return result, nil
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).Delete(&Snapshot{}, "id = ?", id).Error
}

// items loads the items of the given snapshots keyed by snapshot id.
// Every requested id maps to a non-nil slice.
func (r *repository) items(
	ctx context.Context,
	snapshotIDs []uuid.UUID,
) (map[uuid.UUID][]*dto.SnapshotItemRead, error) {
	var rows []itemRow
	if err := r.db.WithContext(ctx).
		Table("snapshot_items").
		Select(itemColumns).
		Joins("JOIN line_items ON line_items.id = snapshot_items.line_item_id").
		Joins("JOIN categories ON categories.id = line_items.category_id").
		Where("snapshot_items.snapshot_id IN ?", snapshotIDs).
		Order("categories.sort_order ASC").
		Order("categories.created_at ASC").
		Order("snapshot_items.position ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID][]*dto.SnapshotItemRead, len(snapshotIDs))
	for _, id := range snapshotIDs {
		out[id] = make([]*dto.SnapshotItemRead, 0)
	}
	for _, row := range rows {
		out[row.SnapshotID] = append(out[row.SnapshotID], &dto.SnapshotItemRead{
			ID:         row.ID,
			SnapshotID: row.SnapshotID,
			LineItemID: row.LineItemID,
			Value:      row.Value,
			LineItem: dto.LineItemWithCategory{
				ID:         row.LineItemID,
				CategoryID: row.CategoryID,
				Name:       row.LineItemName,
				Category: dto.CategoryRef{
					ID:    row.CategoryID,
					Name:  row.CategoryName,
					Type:  row.CategoryType,
					Color: row.CategoryColor,
				},
			},
		})
	}
	return out, nil
}

func mapModelToDTO(s *Snapshot) *dto.SnapshotRead {
	return &dto.SnapshotRead{
		ID:          s.ID,
		UserID:      s.UserID,
		Label:       s.Label,
		Note:        s.Note,
		Date:        s.Date,
		TotalAssets: s.TotalAssets,
		TotalLiabs:  s.TotalLiabs,
		NetWorth:    s.NetWorth,
		CreatedAt:   s.CreatedAt,
	}
}
