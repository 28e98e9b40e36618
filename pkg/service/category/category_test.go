package category_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/networth/internal/fixtures/mocks"
	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	categorysvc "github.com/amirasaad/networth/pkg/service/category"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryServiceWithMocks(t *testing.T) (
	*categorysvc.Service,
	*mocks.MockCategoryRepository,
	*mocks.MockUnitOfWork,
	*mocks.MockDashboardCache,
) {
	repo := mocks.NewMockCategoryRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	dashboards := mocks.NewMockDashboardCache(t)
	uow.EXPECT().CategoryRepository().Return(repo, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	return categorysvc.New(uow, dashboards, slog.Default()), repo, uow, dashboards
}

func TestCreate_AppendsAfterLast(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newCategoryServiceWithMocks(t)
	user := uuid.New()
	var created *dto.CategoryCreate
	repo.EXPECT().MaxSortOrder(mock.Anything, user).Return(4, true, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(
		func(_ context.Context, c *dto.CategoryCreate) { created = c },
	).Return(nil)
	repo.EXPECT().Get(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id uuid.UUID) (*dto.CategoryRead, error) {
			return &dto.CategoryRead{
				ID: id, UserID: user, Name: created.Name, Type: created.Type,
				Color: created.Color, SortOrder: created.SortOrder,
			}, nil
		},
	)

	c, err := svc.Create(context.Background(), user, "  Savings ", "ASSET", "not-a-color")
	require.NoError(t, err)
	assert.Equal(t, 5, created.SortOrder)
	assert.Equal(t, "Savings", c.Name)
	assert.Equal(t, category.DefaultColor, c.Color)
	assert.NotNil(t, c.LineItems)
	assert.Empty(t, c.LineItems)
}

func TestCreate_FirstCategoryStartsAtZero(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newCategoryServiceWithMocks(t)
	user := uuid.New()
	repo.EXPECT().MaxSortOrder(mock.Anything, user).Return(0, false, nil)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *dto.CategoryCreate) bool {
		return c.SortOrder == 0 && c.Color == "#abc" && c.Type == "LIABILITY"
	})).Return(nil)
	repo.EXPECT().Get(mock.Anything, mock.Anything).Return(&dto.CategoryRead{}, nil)

	_, err := svc.Create(context.Background(), user, "Loans", "LIABILITY", "#abc")
	require.NoError(t, err)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name, catName, typ string
		want               error
	}{
		{"missing name", "", "ASSET", category.ErrNameAndTypeRequired},
		{"missing type", "Cash", "", category.ErrNameAndTypeRequired},
		{"blank name", "   ", "ASSET", category.ErrNameAndTypeRequired},
		{"bad type", "Cash", "EQUITY", category.ErrInvalidType},
		{"lower case type", "Cash", "asset", category.ErrInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, uow, _ := newCategoryServiceWithMocks(t)
			_, err := svc.Create(context.Background(), uuid.New(), tc.catName, tc.typ, "")
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, domain.ErrValidation)
			uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("renames owned category", func(t *testing.T) {
		svc, repo, _, dashboards := newCategoryServiceWithMocks(t)
		user, id := uuid.New(), uuid.New()
		repo.EXPECT().Get(mock.Anything, id).Return(&dto.CategoryRead{ID: id, UserID: user, Name: "Old"}, nil).Once()
		repo.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(u *dto.CategoryUpdate) bool {
			return *u.Name == "New" && u.Color == nil
		})).Return(nil)
		repo.EXPECT().Get(mock.Anything, id).Return(&dto.CategoryRead{ID: id, UserID: user, Name: "New"}, nil).Once()
		dashboards.EXPECT().Delete(mock.Anything, user).Return(nil)

		c, err := svc.Update(context.Background(), user, id, " New ", "")
		require.NoError(t, err)
		assert.Equal(t, "New", c.Name)
	})

	t.Run("foreign category is not found", func(t *testing.T) {
		svc, repo, _, _ := newCategoryServiceWithMocks(t)
		id := uuid.New()
		repo.EXPECT().Get(mock.Anything, id).Return(&dto.CategoryRead{ID: id, UserID: uuid.New()}, nil)

		_, err := svc.Update(context.Background(), uuid.New(), id, "Mine now", "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, repo, _, _ := newCategoryServiceWithMocks(t)
		user, id := uuid.New(), uuid.New()
		repo.EXPECT().Get(mock.Anything, id).Return(&dto.CategoryRead{ID: id, UserID: user}, nil)

		_, err := svc.Update(context.Background(), user, id, " ", "#fff")
		assert.ErrorIs(t, err, category.ErrNameRequired)
	})
}
