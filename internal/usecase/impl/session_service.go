package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gestor/internal/delivery/context"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/service"
	"gestor/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	signIn
	resolver usecase.CredentialResolver
	provider service.AuthProvider
	logger   *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Resolver   usecase.CredentialResolver
	Provider   service.AuthProvider
	Reconciler usecase.ProfileReconciler
	Limiter    service.LoginLimiter
	Metrics    service.AuthMetrics `optional:"true"`
	Logger     *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		signIn: signIn{
			reconciler: params.Reconciler,
			limiter:    params.Limiter,
			metrics:    metricsOrNoop(params.Metrics),
		},
		resolver: params.Resolver,
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies a password with the auth provider and reconciles the profile.
// Every credential failure surfaces as the same ErrInvalidCredentials.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if err := srv.check(ctx, methodPassword, identifier, input.ClientIP); err != nil {
		srv.log(ctx).Warn("Login throttled", slog.String("ip", input.ClientIP))
		return nil, err
	}

	email, err := srv.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, srv.fail(ctx, methodPassword, identifier, input.ClientIP, err)
	}

	session, err := srv.provider.SignInWithPassword(ctx, email, input.Password)
	if err != nil {
		srv.log(ctx).Info("Password sign-in rejected", slog.Any("error", err))
		return nil, srv.fail(ctx, methodPassword, identifier, input.ClientIP, signInError(err))
	}

	return srv.complete(ctx, srv.log(ctx), methodPassword, identifier, input.ClientIP, session, input.RememberMe)
}

// Refresh exchanges a refresh token for a rotated session. Only a rejected
// token yields ErrRefreshFailed; timeouts and outages keep their own codes so
// the caller can leave the cookie in place.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrNoRefreshCookie
	}

	session, err := srv.provider.RefreshSession(ctx, refreshToken)
	if err != nil {
		srv.log(ctx).Info("Session refresh rejected", slog.Any("error", err))
		mapped := mapProviderError(err, domainerrors.ErrRefreshFailed)
		srv.metrics.ObserveLogin(methodRefresh, outcomeOf(mapped))
		return nil, mapped
	}

	return srv.complete(ctx, srv.log(ctx), methodRefresh, "", "", session, true)
}

// Logout revokes the session upstream when a token is present. Failures are only logged.
func (srv *sessionService) Logout(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}
	if err := srv.provider.SignOut(ctx, accessToken); err != nil {
		srv.log(ctx).Warn("Upstream sign-out failed", slog.Any("error", err))
	}
}

// signInError maps a provider sign-in failure. An unconfirmed email keeps the
// generic code and only adds a hint.
func signInError(err error) error {
	if kind, ok := service.ProviderErrorKindOf(err); ok && kind == service.ProviderEmailNotConfirmed {
		return domainerrors.ErrInvalidCredentials.WithDetails(hintEmailNotConfirmed)
	}

	return mapProviderError(err, domainerrors.ErrInvalidCredentials)
}
