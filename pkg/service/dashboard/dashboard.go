// Package dashboard computes the per-user overview: the latest snapshot
// compared to the one before it, the net worth history and the category
// breakdown of the latest snapshot. Results are cached until a write
// invalidates them.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/networth/pkg/cache"
	"github.com/amirasaad/networth/pkg/currency"
	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/amirasaad/networth/pkg/service/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// computeTimeout bounds a shared computation, which no longer follows any
// single caller's context.
const computeTimeout = 30 * time.Second

// Service serves dashboards.
type Service struct {
	uow    repository.UnitOfWork
	cache  cache.DashboardCache
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// New creates a dashboard Service. Entries live in dashboards for ttl.
func New(
	uow repository.UnitOfWork,
	dashboards cache.DashboardCache,
	ttl time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		cache:  dashboards,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the user's dashboard, from the cache when possible.
// Concurrent misses for the same user share one computation. The result
// is only cached if no write invalidated the user while it ran.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*dto.Dashboard, error) {
	logger := s.logger.With("handler", "Dashboard", "user_id", userID)
	if cached, err := s.cache.Get(ctx, userID); err != nil {
		logger.Warn("dashboard cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	v, err, shared := s.group.Do(userID.String(), func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), computeTimeout)
		defer cancel()

		gen, genErr := s.cache.Generation(ctx, userID)
		if genErr != nil {
			logger.Warn("dashboard cache generation read failed", "error", genErr)
		}
		d, err := s.compute(ctx, userID)
		if err != nil {
			return nil, err
		}
		if genErr != nil {
			return d, nil
		}
		if err := s.cache.Set(ctx, userID, d, s.ttl, gen); err != nil {
			logger.Warn("dashboard cache write failed", "error", err)
		}
		return d, nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if shared {
		logger.Debug("dashboard computation shared")
	}
	return v.(*dto.Dashboard), nil
}

func (s *Service) compute(ctx context.Context, userID uuid.UUID) (*dto.Dashboard, error) {
	d := &dto.Dashboard{
		History:   []dto.NetWorthPoint{},
		Breakdown: []snapshot.CategoryTotal{},
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, userID)
		if err != nil {
			return err
		}
		code := ""
		if u != nil {
			code = u.Currency
		}
		d.Currency = currency.OrDefault(code)

		snaps, err := uow.SnapshotRepository()
		if err != nil {
			return err
		}
		list, err := snaps.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		d.SnapshotCount = len(list)
		for _, sm := range list {
			d.History = append(d.History, dto.NetWorthPoint{
				ID:          sm.ID,
				Label:       sm.Label,
				Date:        sm.Date,
				TotalAssets: sm.TotalAssets,
				TotalLiabs:  sm.TotalLiabs,
				NetWorth:    sm.NetWorth,
			})
		}
		if len(list) == 0 {
			return nil
		}

		latest := list[0].SnapshotRead
		d.Latest = &latest
		d.Change = latest.NetWorth
		if len(list) > 1 {
			prev := list[1].SnapshotRead
			d.Previous = &prev
			d.Change = latest.NetWorth.Sub(prev.NetWorth)
			pct := snapshot.PercentChange(latest.NetWorth, prev.NetWorth)
			d.ChangePercent = &pct
		}

		detail, err := snaps.GetDetail(ctx, latest.ID)
		if err != nil {
			return err
		}
		if detail != nil {
			d.Breakdown = ledger.BreakdownOf(detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if d.Latest == nil {
		d.Change = decimal.Zero
	}
	return d, nil
}
