package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

const (
	visitTotalKey      = "site:visits:total"
	visitLastKey       = "site:visits:last"
	visitUniqueDaysKey = "site:visits:unique_days"
	visitLogKey        = "site:visits:log"
	visitStatsKey      = "site:stats"
)

// VisitStore is the slice of key-value operations the visit counter
// needs from its backing store.
type VisitStore interface {
	Incr(ctx context.Context, key string) (int64, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	SAdd(ctx context.Context, key, member string) error
	SCard(ctx context.Context, key string) (int64, error)
	LPush(ctx context.Context, key string, value []byte) error
	LTrim(ctx context.Context, key string, start, stop int64) error
	LLen(ctx context.Context, key string) (int64, error)
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, keys ...string) error
}

// VisitService keeps the site visit counters in the injected store.
// Nothing here dials or closes connections.
type VisitService struct {
	store         VisitStore
	lastVisitTTL  time.Duration
	logMaxEntries int64
}

type VisitStats struct {
	Visits         int64             `json:"visits"`
	LastVisit      string            `json:"last_visit"`
	UniqueVisitDay int64             `json:"unique_visit_days"`
	LogEntries     int64             `json:"log_entries"`
	Statistics     map[string]string `json:"statistics"`
}

type visitLogEntry struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

func NewVisitService(store VisitStore, lastVisitTTL time.Duration, logMaxEntries int) *VisitService {
	if lastVisitTTL <= 0 {
		lastVisitTTL = 24 * time.Hour
	}
	if logMaxEntries <= 0 {
		logMaxEntries = 100
	}
	return &VisitService{
		store:         store,
		lastVisitTTL:  lastVisitTTL,
		logMaxEntries: int64(logMaxEntries),
	}
}

// Record counts one visit and returns the updated stats snapshot.
func (s *VisitService) Record(ctx context.Context, requestID string) (*VisitStats, error) {
	now := time.Now()

	total, err := s.store.Incr(ctx, visitTotalKey)
	if err != nil {
		return nil, fmt.Errorf("incr visits failed: %w", err)
	}

	if err := s.store.Set(ctx, visitLastKey, now.Format(time.RFC3339), s.lastVisitTTL); err != nil {
		return nil, fmt.Errorf("set last visit failed: %w", err)
	}
	lastVisit, err := s.store.Get(ctx, visitLastKey)
	if err != nil {
		return nil, fmt.Errorf("get last visit failed: %w", err)
	}

	day := now.Format("2006-01-02")
	if err := s.store.SAdd(ctx, visitUniqueDaysKey, day); err != nil {
		return nil, fmt.Errorf("add unique day failed: %w", err)
	}
	uniqueDays, err := s.store.SCard(ctx, visitUniqueDaysKey)
	if err != nil {
		return nil, fmt.Errorf("count unique days failed: %w", err)
	}

	entry, err := json.Marshal(visitLogEntry{
		Timestamp: now.Format(time.RFC3339),
		RequestID: requestID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal visit log entry failed: %w", err)
	}
	if err := s.store.LPush(ctx, visitLogKey, entry); err != nil {
		return nil, fmt.Errorf("push visit log failed: %w", err)
	}
	if err := s.store.LTrim(ctx, visitLogKey, 0, s.logMaxEntries-1); err != nil {
		return nil, fmt.Errorf("trim visit log failed: %w", err)
	}
	logEntries, err := s.store.LLen(ctx, visitLogKey)
	if err != nil {
		return nil, fmt.Errorf("count visit log failed: %w", err)
	}

	err = s.store.HSet(ctx, visitStatsKey, map[string]string{
		"total_visits": fmt.Sprintf("%d", total),
		"unique_days":  fmt.Sprintf("%d", uniqueDays),
		"last_updated": now.Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("set stats hash failed: %w", err)
	}
	stats, err := s.store.HGetAll(ctx, visitStatsKey)
	if err != nil {
		return nil, fmt.Errorf("get stats hash failed: %w", err)
	}

	return &VisitStats{
		Visits:         total,
		LastVisit:      lastVisit,
		UniqueVisitDay: uniqueDays,
		LogEntries:     logEntries,
		Statistics:     stats,
	}, nil
}

// Reset deletes every visit counter key.
func (s *VisitService) Reset(ctx context.Context) error {
	keys := []string{visitTotalKey, visitLastKey, visitUniqueDaysKey, visitLogKey, visitStatsKey}
	if err := s.store.Del(ctx, keys...); err != nil {
		return fmt.Errorf("reset visit counters failed: %w", err)
	}
	return nil
}

// redisVisitStore adapts the shared Redis client to VisitStore.
type redisVisitStore struct {
	client *redisv9.Client
}

func NewRedisVisitStore(client *redisv9.Client) VisitStore {
	return &redisVisitStore{client: client}
}

func (r *redisVisitStore) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

func (r *redisVisitStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisVisitStore) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *redisVisitStore) SAdd(ctx context.Context, key, member string) error {
	return r.client.SAdd(ctx, key, member).Err()
}

func (r *redisVisitStore) SCard(ctx context.Context, key string) (int64, error) {
	return r.client.SCard(ctx, key).Result()
}

func (r *redisVisitStore) LPush(ctx context.Context, key string, value []byte) error {
	return r.client.LPush(ctx, key, value).Err()
}

func (r *redisVisitStore) LTrim(ctx context.Context, key string, start, stop int64) error {
	return r.client.LTrim(ctx, key, start, stop).Err()
}

func (r *redisVisitStore) LLen(ctx context.Context, key string) (int64, error) {
	return r.client.LLen(ctx, key).Result()
}

func (r *redisVisitStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	flat := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		flat[k] = v
	}
	return r.client.HSet(ctx, key, flat).Err()
}

func (r *redisVisitStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return r.client.HGetAll(ctx, key).Result()
}

func (r *redisVisitStore) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}
