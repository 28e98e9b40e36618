// Package category provides business logic for a user's asset and
// liability categories.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/networth/pkg/cache"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/amirasaad/networth/pkg/service/ownership"
	"github.com/google/uuid"
)

// Service provides category operations.
type Service struct {
	uow    repository.UnitOfWork
	cache  cache.DashboardCache
	logger *slog.Logger
}

// New creates a new category Service.
func New(
	uow repository.UnitOfWork,
	dashboards cache.DashboardCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		cache:  dashboards,
		logger: logger,
	}
}

// List returns the user's categories with their line items.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (list []*dto.CategoryRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		list, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// Create adds a category at the end of the user's ordering.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	name, typ, color string,
) (c *dto.CategoryRead, err error) {
	logger := s.logger.With("handler", "CreateCategory", "user_id", userID)
	if name == "" || typ == "" {
		return nil, category.ErrNameAndTypeRequired
	}
	t, err := category.ParseType(typ)
	if err != nil {
		return nil, err
	}
	name, err = category.NormalizeName(name)
	if err != nil {
		return nil, category.ErrNameAndTypeRequired
	}

	create := &dto.CategoryCreate{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Type:   t.String(),
		Color:  category.NormalizeColor(color),
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		last, ok, err := repo.MaxSortOrder(ctx, userID)
		if err != nil {
			return err
		}
		create.SortOrder = category.NextSortOrder(last, ok)
		if err := repo.Create(ctx, create); err != nil {
			return err
		}
		c, err = repo.Get(ctx, create.ID)
		return err
	})
	if err != nil {
		logger.Error("failed to create category", "error", err)
		return nil, fmt.Errorf("create category: %w", err)
	}
	if c.LineItems == nil {
		c.LineItems = []*dto.LineItemRead{}
	}
	logger.Info("category created", "category_id", c.ID, "type", c.Type)
	return c, nil
}

// Update renames and optionally recolors one of the user's categories.
// The type of a category never changes.
func (s *Service) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	name, color string,
) (c *dto.CategoryRead, err error) {
	logger := s.logger.With("handler", "UpdateCategory", "user_id", userID, "category_id", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		found, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if _, err := ownership.Category(userID, found); err != nil {
			return err
		}
		trimmed, err := category.NormalizeName(name)
		if err != nil {
			return err
		}
		update := &dto.CategoryUpdate{Name: &trimmed}
		if color != "" {
			normalized := category.NormalizeColor(color)
			update.Color = &normalized
		}
		if err := repo.Update(ctx, id, update); err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	cache.Invalidate(ctx, s.cache, userID, logger)
	return c, nil
}
