package impl

import (
	"context"
	"log/slog"

	deliverycontext "gestor/internal/delivery/context"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/repository"
	"gestor/internal/domain/service"
	"gestor/internal/errors"
	"gestor/internal/usecase"

	"go.uber.org/fx"
)

type accountService struct {
	provider    service.AuthProvider
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Provider    service.AuthProvider
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewAccountService creates the account service.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		provider:    params.Provider,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// Me resolves the account behind accessToken. The profile lookup is best effort.
func (srv *accountService) Me(ctx context.Context, accessToken string) (*usecase.MeOutput, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrMissingToken
	}

	account, err := srv.provider.GetUser(ctx, accessToken)
	if err != nil {
		return nil, mapProviderError(err, domainerrors.ErrInvalidToken)
	}

	profile, err := srv.profileRepo.FindByAccountID(ctx, account.ID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Profile lookup failed",
			slog.String("account_id", account.ID.String()),
			slog.Any("error", err),
		)
	}

	return &usecase.MeOutput{Account: account, Profile: profile}, nil
}
