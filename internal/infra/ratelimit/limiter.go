// Package ratelimit throttles failed login attempts with Redis fixed-window counters.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gestor/config"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/service"
	"gestor/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ErrRedisUnavailable wraps any Redis failure. The limiter never returns it to callers.
var ErrRedisUnavailable = errors.New("login limiter store unavailable")

const keyPrefix = "login:"

// Limiter implements service.LoginLimiter. Redis errors fail open.
type Limiter struct {
	redis       redis.UniversalClient
	maxAttempts int64
	window      time.Duration
	ipThrottle  bool
	metrics     service.AuthMetrics
	logger      *slog.Logger
}

// Params holds the dependencies of the login limiter.
type Params struct {
	fx.In

	Redis   redis.UniversalClient `optional:"true"`
	Config  *config.Config
	Metrics service.AuthMetrics `optional:"true"`
	Logger  *slog.Logger
}

// New returns the Redis-backed limiter, or a no-op limiter when Redis is not configured.
func New(params Params) service.LoginLimiter {
	if params.Redis == nil {
		return Noop{}
	}

	return NewLimiter(params.Redis, params.Config.LoginLimit, params.Metrics, params.Logger)
}

// NewLimiter builds a limiter on client with the given budget.
func NewLimiter(client redis.UniversalClient, cfg *config.LoginLimitConfig, metrics service.AuthMetrics, logger *slog.Logger) *Limiter {
	return &Limiter{
		redis:       client,
		maxAttempts: int64(cfg.MaxAttempts),
		window:      cfg.Window,
		ipThrottle:  cfg.IPThrottle,
		metrics:     metrics,
		logger:      logger,
	}
}

// Check returns ErrTooManyAttempts once the identifier (or the IP, when
// throttled) has used up its failure budget for the current window.
func (l *Limiter) Check(ctx context.Context, identifier, ip string) error {
	for _, key := range l.keys(identifier, ip) {
		count, err := l.redis.Get(ctx, key).Int64()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			l.failOpen(ctx, "check", fmt.Errorf("%w: %v", ErrRedisUnavailable, err))
			return nil
		}
		if count >= l.maxAttempts {
			if l.metrics != nil {
				l.metrics.ObserveRateLimited()
			}
			return domainerrors.ErrTooManyAttempts
		}
	}

	return nil
}

func (l *Limiter) RecordFailure(ctx context.Context, identifier, ip string) {
	for _, key := range l.keys(identifier, ip) {
		if err := l.increment(ctx, key); err != nil {
			l.failOpen(ctx, "record", err)
			return
		}
	}
}

func (l *Limiter) Reset(ctx context.Context, identifier, ip string) {
	if err := l.redis.Del(ctx, l.keys(identifier, ip)...).Err(); err != nil {
		l.failOpen(ctx, "reset", fmt.Errorf("%w: %v", ErrRedisUnavailable, err))
	}
}

func (l *Limiter) increment(ctx context.Context, key string) error {
	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	// Fixed window: the TTL is set by the first failure only.
	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}

	return nil
}

func (l *Limiter) keys(identifier, ip string) []string {
	keys := []string{UserKey(identifier)}
	if l.ipThrottle && ip != "" {
		keys = append(keys, IPKey(ip))
	}

	return keys
}

func (l *Limiter) failOpen(ctx context.Context, op string, err error) {
	if l.logger != nil {
		l.logger.WarnContext(ctx, "Login limiter unavailable, allowing request",
			slog.String("operation", op),
			slog.Any("error", err),
		)
	}
}

// UserKey is the counter key of an identifier. Identifiers are case-insensitive.
func UserKey(identifier string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(identifier))
}

// IPKey is the counter key of a client IP.
func IPKey(ip string) string {
	return keyPrefix + "ip:" + ip
}

// Noop is the limiter used when Redis is not configured.
type Noop struct{}

func (Noop) Check(context.Context, string, string) error { return nil }

func (Noop) RecordFailure(context.Context, string, string) {}

func (Noop) Reset(context.Context, string, string) {}
