package impl

import (
	"context"
	"log/slog"

	"gestor/internal/domain/entity"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/service"
	"gestor/internal/usecase"
)

// Sign-in methods, used as metric labels.
const (
	methodPassword = "password"
	methodPattern  = "pattern"
	methodRefresh  = "refresh"
)

// signIn holds the steps shared by every flow that ends with an issued session:
// attempt limiting, profile reconciliation and outcome metrics.
type signIn struct {
	reconciler usecase.ProfileReconciler
	limiter    service.LoginLimiter
	metrics    service.AuthMetrics
}

// check enforces the attempt budget before any secret is verified.
func (s *signIn) check(ctx context.Context, method, identifier, ip string) error {
	if err := s.limiter.Check(ctx, identifier, ip); err != nil {
		s.metrics.ObserveLogin(method, service.OutcomeLimited)
		return err
	}

	return nil
}

// fail records a failed attempt. Only wrong secrets count against the budget.
func (s *signIn) fail(ctx context.Context, method, identifier, ip string, err error) error {
	if domainerrors.CodeOf(err) == domainerrors.ErrInvalidCredentials.ErrorCode() {
		s.limiter.RecordFailure(ctx, identifier, ip)
	}
	s.metrics.ObserveLogin(method, outcomeOf(err))

	return err
}

// complete reconciles the profile behind session and resets the attempt budget.
func (s *signIn) complete(ctx context.Context, logger *slog.Logger, method, identifier, ip string, session *entity.Session, rememberMe bool) (*usecase.LoginOutput, error) {
	if session == nil || session.Account == nil {
		s.metrics.ObserveLogin(method, service.OutcomeError)
		return nil, domainerrors.ErrSessionIssueFailed.WithDetails("session without account")
	}

	profile, err := s.reconciler.EnsureProfile(ctx, session.Account)
	if err != nil {
		logger.Error("Profile reconciliation failed",
			slog.String("account_id", session.Account.ID.String()),
			slog.Any("error", err),
		)
		s.metrics.ObserveLogin(method, service.OutcomeError)
		return nil, err
	}

	if identifier != "" {
		s.limiter.Reset(ctx, identifier, ip)
	}
	s.metrics.ObserveLogin(method, service.OutcomeSuccess)

	return &usecase.LoginOutput{
		Session:    session,
		Profile:    profile,
		RememberMe: rememberMe,
	}, nil
}
