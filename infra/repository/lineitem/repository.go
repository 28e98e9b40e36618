package lineitem

import (
	"context"
	"errors"

	"github.com/amirasaad/networth/pkg/dto"
	repo "github.com/amirasaad/networth/pkg/repository/lineitem"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a line item repository bound to db, which may be a
// transaction.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// ownerRow is the scan target of the line item to category join.
type ownerRow struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	UserID       uuid.UUID
	CategoryType string
}

const ownerColumns = "line_items.id, line_items.category_id, " +
	"categories.user_id, categories.type AS category_type"

func (r *repository) Create(
	ctx context.Context,
	create *dto.LineItemCreate,
) error {
	li := &LineItem{
		ID:         create.ID,
		CategoryID: create.CategoryID,
		Name:       create.Name,
	}
	return r.db.WithContext(ctx).Create(li).Error
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.LineItemUpdate,
) error {
	if update.Name == nil {
		return nil
	}
	return r.db.WithContext(ctx).Model(&LineItem{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": *update.Name}).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.LineItemRead, error) {
	var li LineItem
	if err := r.db.WithContext(ctx).First(&li, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return MapModelToDTO(&li), nil
}

func (r *repository) GetOwner(
	ctx context.Context,
	id uuid.UUID,
) (*dto.LineItemOwner, error) {
	owners, err := r.ListOwners(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, nil
	}
	return owners[0], nil
}

func (r *repository) ListOwners(
	ctx context.Context,
	ids []uuid.UUID,
) ([]*dto.LineItemOwner, error) {
	if len(ids) == 0 {
		return []*dto.LineItemOwner{}, nil
	}
	var rows []ownerRow
	if err := r.db.WithContext(ctx).
		Table("line_items").
		Select(ownerColumns).
		Joins("JOIN categories ON categories.id = line_items.category_id").
		Where("line_items.id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.LineItemOwner, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.LineItemOwner{
			ID:           row.ID,
			CategoryID:   row.CategoryID,
			UserID:       row.UserID,
			CategoryType: row.CategoryType,
		})
	}
	return result, nil
}

// MapModelToDTO maps a GORM model to a read-optimized DTO.
func MapModelToDTO(li *LineItem) *dto.LineItemRead {
	return &dto.LineItemRead{
		ID:         li.ID,
		CategoryID: li.CategoryID,
		Name:       li.Name,
		CreatedAt:  li.CreatedAt,
		UpdatedAt:  li.UpdatedAt,
	}
}
