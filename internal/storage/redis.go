package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"phishguard/internal/domain"
)

// RedisStore caches verdicts so repeated lookups of the same URL skip the
// classifier.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisStore{client: rdb, ttl: ttl}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// CachedPrediction returns the cached verdict for a URL, or nil on a miss.
func (s *RedisStore) CachedPrediction(ctx context.Context, rawURL string) (*domain.Prediction, error) {
	data, err := s.client.Get(ctx, cacheKey(rawURL)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pred domain.Prediction
	if err := json.Unmarshal(data, &pred); err != nil {
		return nil, fmt.Errorf("decode cached verdict: %w", err)
	}
	return &pred, nil
}

// CachePrediction stores a verdict with the configured TTL.
func (s *RedisStore) CachePrediction(ctx context.Context, pred *domain.Prediction) error {
	data, err := json.Marshal(pred)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cacheKey(pred.URL), data, s.ttl).Err()
}

// cacheKey hashes the URL so arbitrary input stays a safe, fixed-size Redis key.
func cacheKey(rawURL string) string {
	h := sha256.Sum256([]byte(rawURL))
	return "verdict:" + hex.EncodeToString(h[:])
}
