package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/networth/infra/repository/category"
	"github.com/amirasaad/networth/infra/repository/lineitem"
	"github.com/amirasaad/networth/infra/repository/snapshot"
	"github.com/amirasaad/networth/infra/repository/user"
	"github.com/amirasaad/networth/pkg/repository"
	categoryrepo "github.com/amirasaad/networth/pkg/repository/category"
	lineitemrepo "github.com/amirasaad/networth/pkg/repository/lineitem"
	snapshotrepo "github.com/amirasaad/networth/pkg/repository/snapshot"
	userrepo "github.com/amirasaad/networth/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do share its transaction;
// outside Do they use the plain connection pool.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*userrepo.Repository)(nil)).Elem():     func(db *gorm.DB) any { return user.New(db) },
			reflect.TypeOf((*categoryrepo.Repository)(nil)).Elem(): func(db *gorm.DB) any { return category.New(db) },
			reflect.TypeOf((*lineitemrepo.Repository)(nil)).Elem(): func(db *gorm.DB) any { return lineitem.New(db) },
			reflect.TypeOf((*snapshotrepo.Repository)(nil)).Elem(): func(db *gorm.DB) any { return snapshot.New(db) },
		},
	}
}

// Do runs fn in a database transaction. Any error from fn rolls back
// every write made through the provided UnitOfWork. GORM errors are
// mapped to domain errors on the way out.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
	return MapGormErrorToDomain(err)
}

// GetRepository returns the repository registered for repoType, which is
// a nil pointer to a repository interface such as (*user.Repository)(nil).
func (u *UoW) GetRepository(repoType any) (any, error) {
	t := reflect.TypeOf(repoType)
	if t == nil {
		return nil, fmt.Errorf("unsupported repository type: <nil>")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	constructor, ok := u.repoRegistry[t]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", t)
	}
	return constructor(u.session()), nil
}

// UserRepository returns the user repository bound to the current session.
func (u *UoW) UserRepository() (userrepo.Repository, error) {
	return user.New(u.session()), nil
}

// CategoryRepository returns the category repository bound to the current session.
func (u *UoW) CategoryRepository() (categoryrepo.Repository, error) {
	return category.New(u.session()), nil
}

// LineItemRepository returns the line item repository bound to the current session.
func (u *UoW) LineItemRepository() (lineitemrepo.Repository, error) {
	return lineitem.New(u.session()), nil
}

// SnapshotRepository returns the snapshot repository bound to the current session.
func (u *UoW) SnapshotRepository() (snapshotrepo.Repository, error) {
	return snapshot.New(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Models lists every persisted model in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&category.Category{},
		&lineitem.LineItem{},
		&snapshot.Snapshot{},
		&snapshot.SnapshotItem{},
	}
}
