// Package lineitem provides business logic for the line items inside a
// user's categories.
package lineitem

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/networth/pkg/cache"
	"github.com/amirasaad/networth/pkg/domain/lineitem"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/amirasaad/networth/pkg/service/ownership"
	"github.com/google/uuid"
)

// Service provides line item operations.
type Service struct {
	uow    repository.UnitOfWork
	cache  cache.DashboardCache
	logger *slog.Logger
}

// New creates a new line item Service.
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

// Create adds a line item to one of the user's categories. An unknown,
// malformed or foreign category id is lineitem.ErrCategoryNotFound.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	categoryID, name string,
) (li *dto.LineItemRead, err error) {
	logger := s.logger.With("handler", "CreateLineItem", "user_id", userID)
	if categoryID == "" || name == "" {
		return nil, lineitem.ErrCategoryAndNameRequired
	}
	name, err = lineitem.NormalizeName(name)
	if err != nil {
		return nil, lineitem.ErrCategoryAndNameRequired
	}
	catID, err := uuid.Parse(strings.TrimSpace(categoryID))
	if err != nil {
		return nil, lineitem.ErrCategoryNotFound
	}

	create := &dto.LineItemCreate{ID: uuid.New(), CategoryID: catID, Name: name}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		found, err := categories.Get(ctx, catID)
		if err != nil {
			return err
		}
		if _, err := ownership.Category(userID, found); err != nil {
			return lineitem.ErrCategoryNotFound
		}
		repo, err := uow.LineItemRepository()
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, create); err != nil {
			return err
		}
		li, err = repo.Get(ctx, create.ID)
		return err
	})
	if err != nil {
		logger.Warn("failed to create line item", "category_id", categoryID, "error", err)
		return nil, fmt.Errorf("create line item: %w", err)
	}
	logger.Info("line item created", "line_item_id", li.ID, "category_id", li.CategoryID)
	return li, nil
}

// Rename changes the name of one of the user's line items.
func (s *Service) Rename(
	ctx context.Context,
	userID, id uuid.UUID,
	name string,
) (li *dto.LineItemRead, err error) {
	logger := s.logger.With("handler", "RenameLineItem", "user_id", userID, "line_item_id", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.LineItemRepository()
		if err != nil {
			return err
		}
		owner, err := repo.GetOwner(ctx, id)
		if err != nil {
			return err
		}
		if _, err := ownership.LineItem(userID, owner); err != nil {
			return err
		}
		trimmed, err := lineitem.NormalizeName(name)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, id, &dto.LineItemUpdate{Name: &trimmed}); err != nil {
			return err
		}
		li, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("rename line item: %w", err)
	}
	cache.Invalidate(ctx, s.cache, userID, logger)
	return li, nil
}
