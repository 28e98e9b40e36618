package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// MemoryDashboardCache implements cache.DashboardCache in process memory.
// It is only correct for a single API instance.
type MemoryDashboardCache struct {
	entries map[uuid.UUID]*dashboardEntry
	gens    map[uuid.UUID]int64
	mu      sync.RWMutex
	now     func() time.Time
}

type dashboardEntry struct {
	dashboard *dto.Dashboard
	expiresAt time.Time
}

// NewMemoryDashboardCache creates an empty in-memory cache.
func NewMemoryDashboardCache() *MemoryDashboardCache {
	return &MemoryDashboardCache{
		entries: make(map[uuid.UUID]*dashboardEntry),
		gens:    make(map[uuid.UUID]int64),
		now:     time.Now,
	}
}

// Get retrieves a dashboard unless it expired.
func (c *MemoryDashboardCache) Get(_ context.Context, userID uuid.UUID) (*dto.Dashboard, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[userID]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, nil
	}
	d := *entry.dashboard
	return &d, nil
}

func (c *MemoryDashboardCache) Generation(_ context.Context, userID uuid.UUID) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gens[userID], nil
}

// Set stores a dashboard with TTL if gen is still current. Expired
// entries are purged here instead of by a background sweeper.
func (c *MemoryDashboardCache) Set(
	_ context.Context,
	userID uuid.UUID,
	d *dto.Dashboard,
	ttl time.Duration,
	gen int64,
) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[userID] != gen {
		return nil
	}
	now := c.now()
	for id, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, id)
		}
	}
	stored := *d
	c.entries[userID] = &dashboardEntry{dashboard: &stored, expiresAt: now.Add(ttl)}
	return nil
}

// Delete removes the user's dashboard and advances the generation.
func (c *MemoryDashboardCache) Delete(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[userID]++
	delete(c.entries, userID)
	return nil
}
