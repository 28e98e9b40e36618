package user_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/amirasaad/networth/internal/fixtures/mocks"
	"github.com/amirasaad/networth/pkg/currency"
	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	usersvc "github.com/amirasaad/networth/pkg/service/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Helper to create a service with mocks
func newUserServiceWithMocks(t *testing.T) (
	*usersvc.Service,
	*mocks.MockUserRepository,
	*mocks.MockUnitOfWork,
	*mocks.MockDashboardCache,
) {
	userRepo := mocks.NewMockUserRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	dashboards := mocks.NewMockDashboardCache(t)
	uow.EXPECT().UserRepository().Return(userRepo, nil).Maybe()
	uow.EXPECT().GetRepository(mock.Anything).Return(userRepo, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	return usersvc.New(uow, dashboards, slog.Default()), userRepo, uow, dashboards
}

func TestUpsertByEmail_Creates(t *testing.T) {
	t.Parallel()
	svc, userRepo, _, _ := newUserServiceWithMocks(t)
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, nil)
	userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *dto.UserCreate) bool {
		return c.Email == "alice@example.com" && c.Name == "Alice" && c.Currency == currency.DefaultCurrency
	})).Return(nil)
	userRepo.EXPECT().Get(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id uuid.UUID) (*dto.UserRead, error) {
			return &dto.UserRead{ID: id, Email: "alice@example.com", Name: "Alice"}, nil
		},
	)

	u, err := svc.UpsertByEmail(context.Background(), " Alice@Example.com ", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestUpsertByEmail_Existing(t *testing.T) {
	t.Parallel()
	svc, userRepo, _, _ := newUserServiceWithMocks(t)
	existing := &dto.UserRead{ID: uuid.New(), Email: "bob@example.com"}
	userRepo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(existing, nil)

	u, err := svc.UpsertByEmail(context.Background(), "bob@example.com", "Bob")
	require.NoError(t, err)
	assert.Equal(t, existing, u)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpsertByEmail_LostRace(t *testing.T) {
	t.Parallel()
	svc, userRepo, _, _ := newUserServiceWithMocks(t)
	winner := &dto.UserRead{ID: uuid.New(), Email: "dev@localhost"}
	userRepo.EXPECT().GetByEmail(mock.Anything, "dev@localhost").Return(nil, nil).Once()
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(fmt.Errorf("insert: %w", domain.ErrAlreadyExists))
	userRepo.EXPECT().GetByEmail(mock.Anything, "dev@localhost").Return(winner, nil).Once()

	u, err := svc.UpsertByEmail(context.Background(), "dev@localhost", "Dev User")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, u.ID)
}

func TestGetSettings(t *testing.T) {
	t.Parallel()

	t.Run("stored currency", func(t *testing.T) {
		svc, userRepo, _, _ := newUserServiceWithMocks(t)
		id := uuid.New()
		userRepo.EXPECT().Get(mock.Anything, id).Return(&dto.UserRead{ID: id, Currency: "EUR"}, nil)
		s, err := svc.GetSettings(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "EUR", s.Currency)
	})

	t.Run("defaults to INR", func(t *testing.T) {
		svc, userRepo, _, _ := newUserServiceWithMocks(t)
		id := uuid.New()
		userRepo.EXPECT().Get(mock.Anything, id).Return(&dto.UserRead{ID: id}, nil)
		s, err := svc.GetSettings(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "INR", s.Currency)
	})
}

func TestUpdateCurrency(t *testing.T) {
	t.Parallel()

	t.Run("supported", func(t *testing.T) {
		svc, userRepo, _, dashboards := newUserServiceWithMocks(t)
		id := uuid.New()
		userRepo.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(u *dto.UserUpdate) bool {
			return u.Currency != nil && *u.Currency == "JPY"
		})).Return(nil)
		userRepo.EXPECT().Get(mock.Anything, id).Return(&dto.UserRead{ID: id, Currency: "JPY"}, nil)
		dashboards.EXPECT().Delete(mock.Anything, id).Return(nil)

		s, err := svc.UpdateCurrency(context.Background(), id, "JPY")
		require.NoError(t, err)
		assert.Equal(t, "JPY", s.Currency)
	})

	for _, code := range []string{"", "XYZ", "usd"} {
		t.Run("rejects "+code, func(t *testing.T) {
			svc, _, uow, _ := newUserServiceWithMocks(t)
			_, err := svc.UpdateCurrency(context.Background(), uuid.New(), code)
			assert.ErrorIs(t, err, currency.ErrInvalidCurrency)
			uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		svc, userRepo, _, dashboards := newUserServiceWithMocks(t)
		id := uuid.New()
		userRepo.EXPECT().Delete(mock.Anything, id).Return(nil)
		dashboards.EXPECT().Delete(mock.Anything, id).Return(nil)
		require.NoError(t, svc.DeleteAccount(context.Background(), id))
	})

	t.Run("repo error", func(t *testing.T) {
		svc, userRepo, _, _ := newUserServiceWithMocks(t)
		id := uuid.New()
		userRepo.EXPECT().Delete(mock.Anything, id).Return(errors.New("db error"))
		require.Error(t, svc.DeleteAccount(context.Background(), id))
	})
}
