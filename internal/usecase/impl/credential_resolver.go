package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gestor/internal/delivery/context"
	"gestor/internal/domain/entity"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/repository"
	"gestor/internal/errors"
	"gestor/internal/usecase"
	"gestor/internal/util"

	"go.uber.org/fx"
)

type credentialResolver struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// CredentialResolverParams holds dependencies for the resolver, injected by Fx.
type CredentialResolverParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewCredentialResolver creates the identifier resolver.
func NewCredentialResolver(params CredentialResolverParams) usecase.CredentialResolver {
	return &credentialResolver{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *credentialResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve returns the lowercase email behind identifier. Emails pass through;
// phones and usernames are looked up in the profile store. Unknown identifiers
// yield ErrInvalidCredentials so callers cannot probe for accounts.
func (srv *credentialResolver) Resolve(ctx context.Context, identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", domainerrors.ErrInvalidCredentials
	}
	if util.IsEmail(identifier) {
		return util.NormalizeEmail(identifier), nil
	}

	var (
		profile *entity.Profile
		err     error
		kind    string
	)
	switch {
	case util.LooksLikePhone(identifier):
		kind = "phone"
		profile, err = srv.profileRepo.FindByPhone(ctx, util.NormalizePhone(identifier))
	case util.IsUsername(identifier):
		kind = "username"
		profile, err = srv.profileRepo.FindByUsername(ctx, strings.ToLower(identifier))
	default:
		return "", domainerrors.ErrInvalidCredentials
	}

	if errors.Is(err, repository.ErrProfileNotFound) {
		return "", domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to resolve identifier", slog.String("kind", kind), slog.Any("error", err))
		return "", domainerrors.ErrLookupFailed.WithDetails(errors.Detail(err))
	}
	if profile.Email == "" {
		return "", domainerrors.ErrInvalidCredentials
	}

	return util.NormalizeEmail(profile.Email), nil
}
