package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// genTTL keeps generation counters around well past any dashboard TTL.
const genTTL = 24 * time.Hour

// setIfGeneration writes KEYS[2] only while KEYS[1] still holds ARGV[1].
var setIfGeneration = redis.NewScript(`
local cur = redis.call('GET', KEYS[1]) or '0'
if cur ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// RedisDashboardCache implements cache.DashboardCache using Redis.
type RedisDashboardCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisClient builds a client from the REDIS_* settings.
func NewRedisClient(cfg *config.Redis) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	opt.PoolSize = cfg.PoolSize
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout
	return redis.NewClient(opt), nil
}

// NewRedisDashboardCache creates a new RedisDashboardCache.
func NewRedisDashboardCache(
	client *redis.Client,
	prefix string,
	logger *slog.Logger,
) *RedisDashboardCache {
	return &RedisDashboardCache{client: client, prefix: prefix, logger: logger}
}

func (r *RedisDashboardCache) key(userID uuid.UUID) string {
	return r.prefix + "dashboard:" + userID.String()
}

func (r *RedisDashboardCache) genKey(userID uuid.UUID) string {
	return r.prefix + "dashboard:gen:" + userID.String()
}

func (r *RedisDashboardCache) Get(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.Dashboard, error) {
	key := r.key(userID)
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return nil, err
	}
	var d dto.Dashboard
	if err := json.Unmarshal(val, &d); err != nil {
		r.logger.Error("Redis cache unmarshal error", "key", key, "error", err)
		return nil, err
	}
	r.logger.Debug("Redis cache hit", "key", key)
	return &d, nil
}

func (r *RedisDashboardCache) Set(
	ctx context.Context,
	userID uuid.UUID,
	d *dto.Dashboard,
	ttl time.Duration,
	gen int64,
) error {
	key := r.key(userID)
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		r.logger.Error("Redis cache marshal error", "key", key, "error", err)
		return err
	}
	stored, err := setIfGeneration.Run(ctx, r.client,
		[]string{r.genKey(userID), key},
		strconv.FormatInt(gen, 10), data, ttl.Milliseconds(),
	).Int()
	if err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return err
	}
	if stored == 0 {
		r.logger.Debug("Redis cache set skipped, stale generation", "key", key, "generation", gen)
		return nil
	}
	r.logger.Debug("Redis cache set", "key", key, "ttl", ttl)
	return nil
}

func (r *RedisDashboardCache) Generation(
	ctx context.Context,
	userID uuid.UUID,
) (int64, error) {
	key := r.genKey(userID)
	gen, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		r.logger.Error("Redis cache generation error", "key", key, "error", err)
		return 0, err
	}
	return gen, nil
}

func (r *RedisDashboardCache) Delete(
	ctx context.Context,
	userID uuid.UUID,
) error {
	key := r.key(userID)
	genKey := r.genKey(userID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, genTTL)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		r.logger.Error("Redis cache delete error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis cache delete", "key", key)
	return nil
}

// Ping checks connectivity.
func (r *RedisDashboardCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
