package ratelimit

import (
	"context"
	"sync"
	"time"

	"air-relatorios/internal/clients/redis"
	"air-relatorios/internal/observability"

	"golang.org/x/time/rate"
)

const window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Service limits requests per key and minute. Redis keeps the window shared
// across instances; without it each process keeps a token bucket per key.
type Service struct {
	redis  *redis.Client
	logger *observability.Logger

	mu    sync.Mutex
	local map[string]*localEntry
	now   func() time.Time
}

// NewService creates a new rate limiting service. redis may be nil.
func NewService(redis *redis.Client, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		logger: logger,
		local:  make(map[string]*localEntry),
		now:    time.Now,
	}
}

// CheckRateLimit records a hit for key and reports whether it is within
// limit requests per minute.
func (s *Service) CheckRateLimit(ctx context.Context, key string, limit int) RateLimitResult {
	if limit <= 0 {
		return RateLimitResult{Allowed: true}
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_key", Value: key},
		observability.Field{Key: "rate_limit", Value: limit},
	)

	if s.redis.IsEnabled() {
		result, err := s.checkRedis(ctx, key, limit)
		if err == nil {
			return result
		}
		s.logger.WarnWithError(ctx, "Redis rate limit check failed, falling back to in-process limiter", err)
	}
	return s.checkLocal(key, limit)
}

func (s *Service) checkRedis(ctx context.Context, key string, limit int) (RateLimitResult, error) {
	now := s.now()
	res, allowed, err := s.redis.SlidingWindowHit(ctx, "rl:"+key, int64(limit), window, now)
	if err != nil {
		return RateLimitResult{}, err
	}
	if !allowed {
		resetAt := res.Oldest.Add(window)
		retry := resetAt.Sub(now)
		if retry < 0 {
			retry = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        limit,
			ResetAt:      resetAt,
			RetryAfterMs: int(retry.Milliseconds()),
		}, nil
	}
	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(res.Count),
		ResetAt:   now.Add(window),
	}, nil
}

func (s *Service) checkLocal(key string, limit int) RateLimitResult {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.local[key]
	if !ok {
		entry = &localEntry{limiter: rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)}
		s.local[key] = entry
	}
	entry.lastSeen = now
	s.sweep(now)

	if !entry.limiter.AllowN(now, 1) {
		retry := entry.limiter.ReserveN(now, 1)
		delay := retry.DelayFrom(now)
		retry.CancelAt(now)
		return RateLimitResult{
			Allowed:      false,
			Limit:        limit,
			ResetAt:      now.Add(delay),
			RetryAfterMs: int(delay.Milliseconds()),
		}
	}
	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: int(entry.limiter.TokensAt(now)),
		ResetAt:   now.Add(window),
	}
}

// sweep forgets keys idle for longer than two windows.
func (s *Service) sweep(now time.Time) {
	if len(s.local) < 1024 {
		return
	}
	for k, e := range s.local {
		if now.Sub(e.lastSeen) > 2*window {
			delete(s.local, k)
		}
	}
}
