package cache

import (
	"context"
	"time"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// NoopDashboardCache never stores anything. It is used when no cache is
// configured so every dashboard read is computed from the database.
type NoopDashboardCache struct{}

func (NoopDashboardCache) Get(context.Context, uuid.UUID) (*dto.Dashboard, error) {
	return nil, nil
}

func (NoopDashboardCache) Generation(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (NoopDashboardCache) Set(context.Context, uuid.UUID, *dto.Dashboard, time.Duration, int64) error {
	return nil
}

func (NoopDashboardCache) Delete(context.Context, uuid.UUID) error {
	return nil
}
