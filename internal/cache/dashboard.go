package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/config"
	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	statsKeyPrefix  = "dashboard:stats"
	scanBatchSize   = 100
	defaultStatsTTL = time.Minute
)

// DashboardStatsCache stores rendered dashboard payloads at the HTTP
// boundary. The aggregation engine itself stays cache-free and
// re-fetches on every call; this layer only short-circuits repeated
// identical requests when explicitly enabled.
type DashboardStatsCache interface {
	GetStats(ctx context.Context, period string) (*domain.DashboardStats, bool, error)
	SetStats(ctx context.Context, period string, stats *domain.DashboardStats) error
	InvalidateAll(ctx context.Context) error
}

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopStatsCache struct{}

func NewDashboardCache(cfg config.CacheConfig) (DashboardStatsCache, error) {
	if !cfg.Enabled {
		return &noopStatsCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.StatsTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}

	return &redisStatsCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopDashboardCache() DashboardStatsCache {
	return &noopStatsCache{}
}

func (c *redisStatsCache) GetStats(ctx context.Context, period string) (*domain.DashboardStats, bool, error) {
	payload, err := c.client.Get(ctx, statsKey(period)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, false, fmt.Errorf("decode dashboard stats cache: %w", err)
	}

	return &stats, true, nil
}

func (c *redisStatsCache) SetStats(ctx context.Context, period string, stats *domain.DashboardStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode dashboard stats cache: %w", err)
	}

	if err := c.client.Set(ctx, statsKey(period), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisStatsCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, statsKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return nil
}

func (n *noopStatsCache) GetStats(ctx context.Context, period string) (*domain.DashboardStats, bool, error) {
	return nil, false, nil
}

func (n *noopStatsCache) SetStats(ctx context.Context, period string, stats *domain.DashboardStats) error {
	return nil
}

func (n *noopStatsCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func statsKey(period string) string {
	if period == "" {
		return statsKeyPrefix + ":default"
	}

	return statsKeyPrefix + ":" + period
}
