package repository

import (
	"context"

	"github.com/amirasaad/networth/pkg/repository/category"
	"github.com/amirasaad/networth/pkg/repository/lineitem"
	"github.com/amirasaad/networth/pkg/repository/snapshot"
	"github.com/amirasaad/networth/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and type-safe
// repository access. Every repository obtained inside Do shares the
// transaction, so a failing fn leaves nothing behind.
//
// Example usage:
//
//	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
//		repoAny, err := uow.GetRepository((*snapshot.Repository)(nil))
//		if err != nil {
//			return err
//		}
//		repo := repoAny.(snapshot.Repository)
//		...
//	})
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an
	// error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns the repository for the given interface pointer,
	// e.g. (*user.Repository)(nil), bound to the current session.
	GetRepository(repoType any) (any, error)

	// Type-safe repository access methods (convenience methods)
	UserRepository() (user.Repository, error)
	CategoryRepository() (category.Repository, error)
	LineItemRepository() (lineitem.Repository, error)
	SnapshotRepository() (snapshot.Repository, error)
}
