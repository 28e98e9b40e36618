package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	categoryrepo "github.com/amirasaad/networth/pkg/repository/category"
	userrepo "github.com/amirasaad/networth/pkg/repository/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() }) //nolint:errcheck
	require.NoError(t, db.AutoMigrate(Models()...))
	return db
}

type fixture struct {
	userID     uuid.UUID
	assetCat   uuid.UUID
	liabCat    uuid.UUID
	savings    uuid.UUID
	creditCard uuid.UUID
}

func seed(t *testing.T, uow *UoW, email string) fixture {
	t.Helper()
	ctx := context.Background()
	f := fixture{
		userID:     uuid.New(),
		assetCat:   uuid.New(),
		liabCat:    uuid.New(),
		savings:    uuid.New(),
		creditCard: uuid.New(),
	}
	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, _ := uow.UserRepository()
		cats, _ := uow.CategoryRepository()
		items, _ := uow.LineItemRepository()
		if err := users.Create(ctx, &dto.UserCreate{ID: f.userID, Email: email, Currency: "INR"}); err != nil {
			return err
		}
		if err := cats.Create(ctx, &dto.CategoryCreate{ID: f.liabCat, UserID: f.userID, Name: "Cards", Type: "LIABILITY", Color: "#222222", SortOrder: 1}); err != nil {
			return err
		}
		if err := cats.Create(ctx, &dto.CategoryCreate{ID: f.assetCat, UserID: f.userID, Name: "Bank", Type: "ASSET", Color: "#111111", SortOrder: 0}); err != nil {
			return err
		}
		if err := items.Create(ctx, &dto.LineItemCreate{ID: f.savings, CategoryID: f.assetCat, Name: "Savings"}); err != nil {
			return err
		}
		return items.Create(ctx, &dto.LineItemCreate{ID: f.creditCard, CategoryID: f.liabCat, Name: "Credit Card"})
	})
	require.NoError(t, err)
	return f
}

func writeSnapshot(t *testing.T, uow *UoW, f fixture) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	id := uuid.New()
	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		snaps, _ := uow.SnapshotRepository()
		if err := snaps.Create(ctx, &dto.SnapshotCreate{
			ID: id, UserID: f.userID, Date: time.Now().UTC(),
			TotalAssets: decimal.NewFromInt(5000),
			TotalLiabs:  decimal.NewFromInt(1200),
			NetWorth:    decimal.NewFromInt(3800),
		}); err != nil {
			return err
		}
		return snaps.CreateItems(ctx, []*dto.SnapshotItemCreate{
			{ID: uuid.New(), SnapshotID: id, LineItemID: f.creditCard, Position: 0, Value: decimal.NewFromInt(1200)},
			{ID: uuid.New(), SnapshotID: id, LineItemID: f.savings, Position: 1, Value: decimal.NewFromInt(5000)},
		})
	})
	require.NoError(t, err)
	return id
}

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestUoW_GetRepository(t *testing.T) {
	uow := NewUoW(newSQLiteDB(t))

	repoAny, err := uow.GetRepository((*userrepo.Repository)(nil))
	require.NoError(t, err)
	_, ok := repoAny.(userrepo.Repository)
	assert.True(t, ok)

	repoAny, err = uow.GetRepository((*categoryrepo.Repository)(nil))
	require.NoError(t, err)
	_, ok = repoAny.(categoryrepo.Repository)
	assert.True(t, ok)

	_, err = uow.GetRepository((*error)(nil))
	assert.Error(t, err)
	_, err = uow.GetRepository(nil)
	assert.Error(t, err)
}

func TestUoW_RollbackLeavesNoSnapshot(t *testing.T) {
	db := newSQLiteDB(t)
	uow := NewUoW(db)
	f := seed(t, uow, "a@example.com")
	ctx := context.Background()
	boom := errors.New("boom")

	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		snaps, _ := uow.SnapshotRepository()
		id := uuid.New()
		if err := snaps.Create(ctx, &dto.SnapshotCreate{ID: id, UserID: f.userID, Date: time.Now().UTC()}); err != nil {
			return err
		}
		if err := snaps.CreateItems(ctx, []*dto.SnapshotItemCreate{
			{ID: uuid.New(), SnapshotID: id, LineItemID: f.savings, Value: decimal.NewFromInt(1)},
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, count(t, db, "snapshots"))
	assert.Zero(t, count(t, db, "snapshot_items"))
}

func TestUoW_FailedItemInsertLeavesNothing(t *testing.T) {
	db := newSQLiteDB(t)
	uow := NewUoW(db)
	f := seed(t, uow, "a@example.com")
	ctx := context.Background()

	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		snaps, _ := uow.SnapshotRepository()
		id := uuid.New()
		if err := snaps.Create(ctx, &dto.SnapshotCreate{ID: id, UserID: f.userID, Date: time.Now().UTC()}); err != nil {
			return err
		}
		// the second row references a line item that does not exist
		return snaps.CreateItems(ctx, []*dto.SnapshotItemCreate{
			{ID: uuid.New(), SnapshotID: id, LineItemID: f.savings, Value: decimal.NewFromInt(1)},
			{ID: uuid.New(), SnapshotID: id, LineItemID: uuid.New(), Value: decimal.NewFromInt(2)},
		})
	})
	require.Error(t, err)
	assert.Zero(t, count(t, db, "snapshots"))
	assert.Zero(t, count(t, db, "snapshot_items"))
}

func TestSnapshotDetailOrderAndCounts(t *testing.T) {
	db := newSQLiteDB(t)
	uow := NewUoW(db)
	f := seed(t, uow, "a@example.com")
	id := writeSnapshot(t, uow, f)
	ctx := context.Background()

	snaps, err := uow.SnapshotRepository()
	require.NoError(t, err)

	detail, err := snaps.GetDetail(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Len(t, detail.Items, 2)
	// categories sort before submission position
	assert.Equal(t, f.savings, detail.Items[0].LineItemID)
	assert.Equal(t, "Bank", detail.Items[0].LineItem.Category.Name)
	assert.Equal(t, "ASSET", detail.Items[0].LineItem.Category.Type)
	assert.Equal(t, f.creditCard, detail.Items[1].LineItemID)
	assert.True(t, decimal.NewFromInt(3800).Equal(detail.NetWorth))

	list, err := snaps.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].Count.Items)

	all, err := snaps.ListDetailsByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Items, 2)
}

func TestListOwnersAcrossUsers(t *testing.T) {
	uow := NewUoW(newSQLiteDB(t))
	a := seed(t, uow, "a@example.com")
	b := seed(t, uow, "b@example.com")

	items, err := uow.LineItemRepository()
	require.NoError(t, err)
	owners, err := items.ListOwners(context.Background(), []uuid.UUID{a.savings, b.creditCard, uuid.New()})
	require.NoError(t, err)
	require.Len(t, owners, 2)

	byID := map[uuid.UUID]*dto.LineItemOwner{}
	for _, o := range owners {
		byID[o.ID] = o
	}
	assert.Equal(t, a.userID, byID[a.savings].UserID)
	assert.Equal(t, "ASSET", byID[a.savings].CategoryType)
	assert.Equal(t, b.userID, byID[b.creditCard].UserID)
	assert.Equal(t, "LIABILITY", byID[b.creditCard].CategoryType)
}

func TestDeleteSnapshotCascadesItems(t *testing.T) {
	db := newSQLiteDB(t)
	uow := NewUoW(db)
	f := seed(t, uow, "a@example.com")
	id := writeSnapshot(t, uow, f)

	snaps, _ := uow.SnapshotRepository()
	require.NoError(t, snaps.Delete(context.Background(), id))

	assert.Zero(t, count(t, db, "snapshots"))
	assert.Zero(t, count(t, db, "snapshot_items"))
	assert.Equal(t, int64(2), count(t, db, "line_items"))
}

func TestDeleteUserCascadesEverything(t *testing.T) {
	db := newSQLiteDB(t)
	uow := NewUoW(db)
	f := seed(t, uow, "a@example.com")
	other := seed(t, uow, "b@example.com")
	writeSnapshot(t, uow, f)
	writeSnapshot(t, uow, other)

	users, _ := uow.UserRepository()
	require.NoError(t, users.Delete(context.Background(), f.userID))

	assert.Equal(t, int64(1), count(t, db, "users"))
	assert.Equal(t, int64(2), count(t, db, "categories"))
	assert.Equal(t, int64(2), count(t, db, "line_items"))
	assert.Equal(t, int64(1), count(t, db, "snapshots"))
	assert.Equal(t, int64(2), count(t, db, "snapshot_items"))
}

func TestDuplicateEmailMapsToAlreadyExists(t *testing.T) {
	uow := NewUoW(newSQLiteDB(t))
	seed(t, uow, "a@example.com")
	ctx := context.Background()

	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, _ := uow.UserRepository()
		return users.Create(ctx, &dto.UserCreate{ID: uuid.New(), Email: "a@example.com", Currency: "INR"})
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}
