package lineitem

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() }) //nolint:errcheck
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestCreate(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "line_items" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := New(db).Create(context.Background(), &dto.LineItemCreate{
		ID:         uuid.New(),
		CategoryID: uuid.New(),
		Name:       "Savings",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOwners(t *testing.T) {
	db, mock := newMockDB(t)
	a, b := uuid.New(), uuid.New()
	catID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT line_items.id, line_items.category_id, categories.user_id, categories.type AS category_type FROM "line_items" JOIN categories ON categories.id = line_items.category_id WHERE line_items.id IN \(\$1,\$2\)`).
		WithArgs(a, b).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "user_id", "category_type"}).
			AddRow(a.String(), catID.String(), userID.String(), "ASSET"))

	owners, err := New(db).ListOwners(context.Background(), []uuid.UUID{a, b})
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, a, owners[0].ID)
	assert.Equal(t, userID, owners[0].UserID)
	assert.Equal(t, "ASSET", owners[0].CategoryType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOwnersEmptyInputSkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)

	owners, err := New(db).ListOwners(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, owners)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOwnerMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "line_items" JOIN categories`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "user_id", "category_type"}))

	owner, err := New(db).GetOwner(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}
