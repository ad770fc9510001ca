package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gestor/config"
	domainerrors "gestor/internal/domain/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMetrics struct {
	limited int
}

func (m *countingMetrics) ObserveLogin(string, string)                      {}
func (m *countingMetrics) ObserveProviderCall(string, time.Duration, error) {}
func (m *countingMetrics) ObserveProfileCreated()                           {}
func (m *countingMetrics) ObserveRateLimited()                              { m.limited++ }

func newTestLimiter(t *testing.T, ipThrottle bool) (*Limiter, *miniredis.Miniredis, *countingMetrics) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	metrics := &countingMetrics{}
	cfg := &config.LoginLimitConfig{MaxAttempts: 3, Window: time.Minute, IPThrottle: ipThrottle}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewLimiter(client, cfg, metrics, logger), mr, metrics
}

func TestLimiter_BlocksAfterMaxFailures(t *testing.T) {
	limiter, _, metrics := newTestLimiter(t, false)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Check(ctx, "ana@example.com", "10.0.0.1"))
		limiter.RecordFailure(ctx, "ana@example.com", "10.0.0.1")
	}

	err := limiter.Check(ctx, "ana@example.com", "10.0.0.1")
	assert.ErrorIs(t, err, domainerrors.ErrTooManyAttempts)
	assert.Equal(t, 1, metrics.limited)

	// Identifiers are case-insensitive.
	assert.ErrorIs(t, limiter.Check(ctx, "ANA@example.com ", "10.0.0.9"), domainerrors.ErrTooManyAttempts)

	// Another identifier is unaffected while IP throttling is off.
	assert.NoError(t, limiter.Check(ctx, "bob@example.com", "10.0.0.1"))
}

func TestLimiter_ResetClearsCounters(t *testing.T) {
	limiter, mr, _ := newTestLimiter(t, true)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		limiter.RecordFailure(ctx, "ana", "10.0.0.1")
	}
	require.Error(t, limiter.Check(ctx, "ana", "10.0.0.1"))

	limiter.Reset(ctx, "ana", "10.0.0.1")

	assert.NoError(t, limiter.Check(ctx, "ana", "10.0.0.1"))
	assert.False(t, mr.Exists(UserKey("ana")))
	assert.False(t, mr.Exists(IPKey("10.0.0.1")))
}

func TestLimiter_WindowExpires(t *testing.T) {
	limiter, mr, _ := newTestLimiter(t, false)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		limiter.RecordFailure(ctx, "ana", "")
	}
	assert.Equal(t, time.Minute, mr.TTL(UserKey("ana")))
	require.Error(t, limiter.Check(ctx, "ana", ""))

	mr.FastForward(time.Minute + time.Second)

	assert.NoError(t, limiter.Check(ctx, "ana", ""))
}

func TestLimiter_IPThrottleSharedAcrossIdentifiers(t *testing.T) {
	limiter, _, _ := newTestLimiter(t, true)
	ctx := context.Background()

	limiter.RecordFailure(ctx, "ana", "10.0.0.1")
	limiter.RecordFailure(ctx, "bob", "10.0.0.1")
	limiter.RecordFailure(ctx, "carla", "10.0.0.1")

	assert.ErrorIs(t, limiter.Check(ctx, "dora", "10.0.0.1"), domainerrors.ErrTooManyAttempts)
	assert.NoError(t, limiter.Check(ctx, "dora", "10.0.0.2"))
}

func TestLimiter_FailsOpenWhenRedisErrors(t *testing.T) {
	limiter, mr, _ := newTestLimiter(t, true)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		limiter.RecordFailure(ctx, "ana", "10.0.0.1")
	}
	mr.SetError("ERR simulated outage")

	assert.NoError(t, limiter.Check(ctx, "ana", "10.0.0.1"))
	assert.NotPanics(t, func() {
		limiter.RecordFailure(ctx, "ana", "10.0.0.1")
		limiter.Reset(ctx, "ana", "10.0.0.1")
	})
}

func TestNew_WithoutRedisIsNoop(t *testing.T) {
	limiter := New(Params{
		Config: &config.Config{LoginLimit: &config.LoginLimitConfig{MaxAttempts: 1, Window: time.Minute}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.IsType(t, Noop{}, limiter)
	ctx := context.Background()
	limiter.RecordFailure(ctx, "ana", "")
	limiter.RecordFailure(ctx, "ana", "")
	assert.NoError(t, limiter.Check(ctx, "ana", ""))
}
