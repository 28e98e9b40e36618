// Package user provides business logic for user accounts and their
// settings.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/networth/pkg/cache"
	"github.com/amirasaad/networth/pkg/currency"
	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	userrepo "github.com/amirasaad/networth/pkg/repository/user"
	"github.com/google/uuid"
)

// Service provides business logic for user operations.
type Service struct {
	uow    repository.UnitOfWork
	cache  cache.DashboardCache
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork, the dashboard cache and a
// logger.
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

// UpsertByEmail returns the user registered under email, creating it
// with name when it does not exist yet.
func (s *Service) UpsertByEmail(
	ctx context.Context,
	email, name string,
) (u *dto.UserRead, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repoAny, err := uow.GetRepository((*userrepo.Repository)(nil))
		if err != nil {
			return err
		}
		repo, ok := repoAny.(userrepo.Repository)
		if !ok {
			return fmt.Errorf("unexpected repository type")
		}
		u, err = repo.GetByEmail(ctx, email)
		if err != nil || u != nil {
			return err
		}
		create := &dto.UserCreate{
			ID:       uuid.New(),
			Name:     name,
			Email:    email,
			Currency: currency.DefaultCurrency,
		}
		if err := repo.Create(ctx, create); err != nil {
			return err
		}
		s.logger.Info("user created", "user_id", create.ID, "email", email)
		u, err = repo.Get(ctx, create.ID)
		return err
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost a race with a concurrent insert; the row is there now.
		return s.GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return u, nil
}

// GetByEmail retrieves a user by email.
func (s *Service) GetByEmail(ctx context.Context, email string) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetSettings returns the user's settings. A user without a stored
// currency gets the default one.
func (s *Service) GetSettings(ctx context.Context, id uuid.UUID) (*dto.Settings, error) {
	var code string
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u != nil {
			code = u.Currency
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &dto.Settings{Currency: currency.OrDefault(code)}, nil
}

// UpdateCurrency changes the user's display currency.
func (s *Service) UpdateCurrency(ctx context.Context, id uuid.UUID, code string) (*dto.Settings, error) {
	logger := s.logger.With("handler", "UpdateCurrency", "user_id", id)
	if err := currency.Validate(code); err != nil {
		logger.Warn("rejected currency", "currency", code)
		return nil, err
	}
	var updated string
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, id, &dto.UserUpdate{Currency: &code}); err != nil {
			return err
		}
		u, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		updated = u.Currency
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update currency: %w", err)
	}
	cache.Invalidate(ctx, s.cache, id, logger)
	logger.Info("currency updated", "currency", updated)
	return &dto.Settings{Currency: updated}, nil
}

// DeleteAccount removes the user together with everything they own.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	logger := s.logger.With("handler", "DeleteAccount", "user_id", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		logger.Error("failed to delete account", "error", err)
		return fmt.Errorf("delete account: %w", err)
	}
	cache.Invalidate(ctx, s.cache, id, logger)
	logger.Info("account deleted")
	return nil
}
