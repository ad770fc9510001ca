package service

import "context"

// LoginLimiter throttles failed login attempts per identifier and client IP.
type LoginLimiter interface {
	// Check returns ErrTooManyAttempts when the budget is exhausted.
	Check(ctx context.Context, identifier, ip string) error
	RecordFailure(ctx context.Context, identifier, ip string)
	Reset(ctx context.Context, identifier, ip string)
}
