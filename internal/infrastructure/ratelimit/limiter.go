// Package ratelimit provides a per-client token-bucket limiter for the API
// surface, keyed by client IP.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// Config holds the token-bucket parameters applied to each client.
type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultConfig returns the default per-client limits.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

// ClientLimiter maintains one token bucket per client key.
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// NewClientLimiter creates a ClientLimiter with the given per-client config.
func NewClientLimiter(config Config) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

// NewClientLimiterWithDefaults creates a ClientLimiter with DefaultConfig.
func NewClientLimiterWithDefaults() *ClientLimiter {
	return NewClientLimiter(DefaultConfig())
}

// GetLimiter returns the limiter for a client key, creating it on first use.
func (l *ClientLimiter) GetLimiter(client string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[client]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[client]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[client] = limiter
	return limiter
}

// SetClientLimit overrides the limits for a specific client key.
func (l *ClientLimiter) SetClientLimit(client string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.limiters[client] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Allow reports whether the client may proceed, consuming a token if so.
func (l *ClientLimiter) Allow(client string) bool {
	return l.GetLimiter(client).Allow()
}
