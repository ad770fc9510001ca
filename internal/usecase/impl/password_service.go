package impl

import (
	"context"
	"log/slog"

	"gestor/config"
	deliverycontext "gestor/internal/delivery/context"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/service"
	"gestor/internal/errors"
	"gestor/internal/usecase"
	"gestor/internal/util"

	"go.uber.org/fx"
)

type passwordService struct {
	provider        service.AuthProvider
	defaultRedirect string
	logger          *slog.Logger
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	Provider service.AuthProvider
	Config   *config.Config
	Logger   *slog.Logger
}

// NewPasswordService creates the password recovery service.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	srv := &passwordService{
		provider: params.Provider,
		logger:   params.Logger,
	}
	if params.Config.Auth != nil {
		srv.defaultRedirect = params.Config.Auth.PasswordResetRedirect
	}

	return srv
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForgotPassword requests a recovery email. The outcome is only logged so the
// response is the same whether or not the email exists.
func (srv *passwordService) ForgotPassword(ctx context.Context, email, redirectTo string) {
	if redirectTo == "" {
		redirectTo = srv.defaultRedirect
	}

	if err := srv.provider.ResetPasswordForEmail(ctx, util.NormalizeEmail(email), redirectTo); err != nil {
		srv.log(ctx).Warn("Recovery email request failed", slog.Any("error", err))
	}
}

// ResetPassword sets a new password for the account behind a recovery access
// token. The admin API is preferred; without a service-role key the user's own
// token is used.
func (srv *passwordService) ResetPassword(ctx context.Context, accessToken, password string) error {
	account, err := srv.provider.GetUser(ctx, accessToken)
	if err != nil {
		return mapProviderError(err, domainerrors.ErrInvalidToken)
	}

	err = srv.provider.AdminUpdatePassword(ctx, account.ID, password)
	if errors.Is(err, service.ErrAdminNotConfigured) {
		_, err = srv.provider.UpdatePassword(ctx, accessToken, password)
	}
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("account_id", account.ID.String()), slog.Any("error", err))
		return mapProviderError(err, domainerrors.ErrResetFailed.WithDetails(service.ProviderErrorDetailOf(err)))
	}

	srv.log(ctx).Info("Password reset", slog.String("account_id", account.ID.String()))

	return nil
}
