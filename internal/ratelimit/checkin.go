package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/wellbeamhq/pulse/internal/config"
)

const keyCheckinEmployee = "checkin:employee:%s"

// CheckinLimiter throttles check-in submissions per employee. A nil limiter
// means rate limiting is disabled.
type CheckinLimiter struct {
	enabled bool

	bucket *TokenBucket

	rate  float64
	burst int
}

func NewCheckinLimiter(cfg config.Config) (*CheckinLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.CheckinRate <= 0 || limitCfg.CheckinBurst <= 0 {
		return nil, errors.New("check-in rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})

	return &CheckinLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    limitCfg.CheckinRate,
		burst:   limitCfg.CheckinBurst,
	}, nil
}

func (l *CheckinLimiter) Enabled() bool {
	return l != nil && l.enabled
}

func (l *CheckinLimiter) AllowEmployee(ctx context.Context, employeeID string) (bool, error) {
	if !l.Enabled() {
		return true, nil
	}
	key := fmt.Sprintf(keyCheckinEmployee, strings.TrimSpace(employeeID))
	return l.bucket.Allow(ctx, key, l.rate, l.burst)
}
