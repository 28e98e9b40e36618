package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/amirasaad/networth/infra/repository/lineitem"
	"github.com/amirasaad/networth/pkg/dto"
	repo "github.com/amirasaad/networth/pkg/repository/category"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a category repository bound to db, which may be a
// transaction.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.CategoryCreate,
) error {
	c := &Category{
		ID:        create.ID,
		UserID:    create.UserID,
		Name:      create.Name,
		Type:      create.Type,
		Color:     create.Color,
		SortOrder: create.SortOrder,
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.CategoryUpdate,
) error {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Color != nil {
		updates["color"] = *update.Color
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.CategoryRead, error) {
	var c Category
	err := r.db.WithContext(ctx).
		Preload("LineItems", orderLineItems).
		First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&c), nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.CategoryRead, error) {
	var cats []Category
	if err := r.db.WithContext(ctx).
		Preload("LineItems", orderLineItems).
		Where("user_id = ?", userID).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.CategoryRead, 0, len(cats))
	for i := range cats {
		result = append(result, mapModelToDTO(&cats[i]))
	}
	return result, nil
}

func (r *repository) MaxSortOrder(
	ctx context.Context,
	userID uuid.UUID,
) (int, bool, error) {
	var max sql.NullInt64
	row := r.db.WithContext(ctx).Model(&Category{}).
		Select("MAX(sort_order)").
		Where("user_id = ?", userID).
		Row()
	if err := row.Scan(&max); err != nil {
		return 0, false, err
	}
	if !max.Valid {
		return 0, false, nil
	}
	return int(max.Int64), true, nil
}

func orderLineItems(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func mapModelToDTO(c *Category) *dto.CategoryRead {
	items := make([]*dto.LineItemRead, 0, len(c.LineItems))
	for i := range c.LineItems {
		items = append(items, lineitem.MapModelToDTO(&c.LineItems[i]))
	}
	return &dto.CategoryRead{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      c.Type,
		Color:     c.Color,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		LineItems: items,
	}
}
