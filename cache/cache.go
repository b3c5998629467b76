// Package cache provides a Redis-backed cache in front of Solve, keyed by
// an input fingerprint so repeated identical requests skip the orchestrator.
package cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/routekit/vrpkit/solver"
)

// SolutionCache caches gzip+JSON-encoded solver.Result values under a
// fingerprint-derived key, the same shape as a market-data cache keyed by
// region: compress before writing, decompress on read, TTL by default.
type SolutionCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewSolutionCache builds a cache with the given TTL. A zero ttl falls back
// to 10 minutes.
func NewSolutionCache(redisClient *redis.Client, ttl time.Duration) *SolutionCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &SolutionCache{redis: redisClient, ttl: ttl}
}

func cacheKey(fingerprint string) string {
	return fmt.Sprintf("vrpkit:solution:%s", fingerprint)
}

// Get returns the cached result for fingerprint, or (nil, nil) on a cache
// miss — callers distinguish "not cached" from "cache broken" only by the
// non-nil error case.
func (c *SolutionCache) Get(ctx context.Context, fingerprint string) (*solver.Result, error) {
	data, err := c.redis.Get(ctx, cacheKey(fingerprint)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cache: get: %w", err)
	}

	result, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("cache: decompress: %w", err)
	}

	return result, nil
}

// Set stores result under fingerprint with the cache's configured TTL.
func (c *SolutionCache) Set(ctx context.Context, fingerprint string, result *solver.Result) error {
	compressed, err := compress(result)
	if err != nil {
		return fmt.Errorf("cache: compress: %w", err)
	}

	if err := c.redis.Set(ctx, cacheKey(fingerprint), compressed, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set: %w", err)
	}

	return nil
}

func compress(result *solver.Result) ([]byte, error) {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(jsonData); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decompress(data []byte) (*solver.Result, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	jsonData, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var result solver.Result
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
