// Package ratelimit provides in-process request rate limiting built on
// golang.org/x/time/rate, with per-key token buckets so one noisy client
// cannot starve the rest of the API.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds rate limiter settings.
type Config struct {
	RequestsPerSecond int  `json:"requests_per_second"`
	BurstSize         int  `json:"burst_size"`
	Enabled           bool `json:"enabled"`

	// MaxKeys bounds the per-key bucket map; stale keys are evicted.
	MaxKeys       int           `json:"max_keys,omitempty"`
	CleanupPeriod time.Duration `json:"cleanup_period,omitempty"`
}

// Validate fills defaults and rejects nonsensical settings.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests per second cannot be negative")
	}
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = 10
	}
	if c.BurstSize <= 0 {
		c.BurstSize = c.RequestsPerSecond
	}
	if c.MaxKeys <= 0 {
		c.MaxKeys = 10000
	}
	if c.CleanupPeriod <= 0 {
		c.CleanupPeriod = 5 * time.Minute
	}
	return nil
}

// DefaultConfig returns a sensible default limiter configuration.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         10,
		Enabled:           true,
	}
}

// Limiter is the rate limiting interface used by the HTTP middleware.
type Limiter interface {
	// TryAcquire attempts to take a token from the global bucket.
	TryAcquire() bool
	// TryAcquireForKey attempts to take a token from the bucket for key.
	TryAcquireForKey(key string) bool
	// Limit returns the configured requests-per-second ceiling.
	Limit() int
}

type localLimiter struct {
	mu          sync.Mutex
	config      Config
	global      *rate.Limiter
	buckets     map[string]*bucketEntry
	lastCleanup time.Time
}

type bucketEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// NewLimiter creates a local limiter from the given configuration.
func NewLimiter(config Config) (Limiter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &localLimiter{
		config:      config,
		global:      rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.BurstSize),
		buckets:     make(map[string]*bucketEntry),
		lastCleanup: time.Now(),
	}, nil
}

func (l *localLimiter) TryAcquire() bool {
	if !l.config.Enabled {
		return true
	}
	return l.global.Allow()
}

func (l *localLimiter) TryAcquireForKey(key string) bool {
	if !l.config.Enabled {
		return true
	}
	return l.bucketFor(key).Allow()
}

func (l *localLimiter) Limit() int {
	return l.config.RequestsPerSecond
}

func (l *localLimiter) bucketFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastCleanup) > l.config.CleanupPeriod || len(l.buckets) >= l.config.MaxKeys {
		l.evictStale(now)
	}

	entry, ok := l.buckets[key]
	if !ok {
		entry = &bucketEntry{
			limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.BurstSize),
		}
		l.buckets[key] = entry
	}
	entry.lastUsed = now
	return entry.limiter
}

// evictStale removes buckets idle for longer than the cleanup period.
// Caller holds the lock.
func (l *localLimiter) evictStale(now time.Time) {
	for key, entry := range l.buckets {
		if now.Sub(entry.lastUsed) > l.config.CleanupPeriod {
			delete(l.buckets, key)
		}
	}
	l.lastCleanup = now
}
