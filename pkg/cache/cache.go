package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// DashboardCache stores the computed dashboard per user. Entries are
// derived data: losing one only costs a recomputation.
//
// Every Delete advances the user's generation. A reader takes the
// generation before computing and passes it to Set, which stores nothing
// if a write invalidated the user in between.
type DashboardCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, userID uuid.UUID) (*dto.Dashboard, error)
	// Generation returns the user's current generation, 0 if never
	// invalidated.
	Generation(ctx context.Context, userID uuid.UUID) (int64, error)
	// Set stores d only while the user's generation still equals gen.
	Set(ctx context.Context, userID uuid.UUID, d *dto.Dashboard, ttl time.Duration, gen int64) error
	// Delete drops the user's entry and advances the generation; deleting
	// a missing entry is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Invalidate drops the user's dashboard after a committed write. The
// write already succeeded, so a cache failure is only logged.
func Invalidate(ctx context.Context, c DashboardCache, userID uuid.UUID, logger *slog.Logger) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, userID); err != nil {
		logger.Warn("dashboard cache invalidation failed", "user_id", userID, "error", err)
	}
}
