package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gestor/internal/delivery/context"
	"gestor/internal/domain/entity"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/repository"
	"gestor/internal/domain/service"
	"gestor/internal/errors"
	"gestor/internal/usecase"

	"go.uber.org/fx"
)

// Verified when no pattern is stored, so a missing credential costs the same
// scrypt work as a wrong one.
const (
	dummyPatternSalt = "00000000000000000000000000000000"
	dummyPatternHash = "0000000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000000"
)

type patternService struct {
	signIn
	resolver    usecase.CredentialResolver
	provider    service.AuthProvider
	patternRepo repository.PatternRepository
	hasher      service.PatternHasher
	logger      *slog.Logger
}

// PatternServiceParams holds dependencies for PatternService, injected by Fx.
type PatternServiceParams struct {
	fx.In

	Resolver    usecase.CredentialResolver
	Provider    service.AuthProvider
	Reconciler  usecase.ProfileReconciler
	PatternRepo repository.PatternRepository
	Hasher      service.PatternHasher
	Limiter     service.LoginLimiter
	Metrics     service.AuthMetrics `optional:"true"`
	Logger      *slog.Logger
}

// NewPatternService creates the pattern login service.
func NewPatternService(params PatternServiceParams) usecase.PatternUsecase {
	return &patternService{
		signIn: signIn{
			reconciler: params.Reconciler,
			limiter:    params.Limiter,
			metrics:    metricsOrNoop(params.Metrics),
		},
		resolver:    params.Resolver,
		provider:    params.Provider,
		patternRepo: params.PatternRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *patternService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetPattern stores a new pattern for the account behind accessToken.
// The email is taken from the token's account, never from the request.
func (srv *patternService) SetPattern(ctx context.Context, accessToken, pattern string) error {
	account, err := srv.provider.GetUser(ctx, accessToken)
	if err != nil {
		return mapProviderError(err, domainerrors.ErrInvalidToken)
	}
	if account.Email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("La cuenta no tiene correo")
	}

	salt, hash, err := srv.hasher.Hash(pattern)
	if err != nil {
		srv.log(ctx).Error("Failed to hash pattern", slog.Any("error", err))
		return domainerrors.ErrInternalError
	}

	credential := &entity.PatternCredential{
		AccountID: account.ID,
		Email:     strings.ToLower(account.Email),
		Salt:      salt,
		Hash:      hash,
	}
	if err := srv.patternRepo.Upsert(ctx, credential); err != nil {
		srv.log(ctx).Error("Failed to store pattern", slog.String("account_id", account.ID.String()), slog.Any("error", err))
		return domainerrors.ErrUpsertFailed.WithDetails(errors.Detail(err))
	}

	srv.log(ctx).Info("Pattern updated", slog.String("account_id", account.ID.String()))

	return nil
}

// PatternLogin verifies the pattern in constant time and bridges into a real
// provider session through a one-time sign-in token exchanged server-side.
func (srv *patternService) PatternLogin(ctx context.Context, input usecase.PatternLoginInput) (*usecase.LoginOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if err := srv.check(ctx, methodPattern, identifier, input.ClientIP); err != nil {
		srv.log(ctx).Warn("Pattern login throttled", slog.String("ip", input.ClientIP))
		return nil, err
	}

	email, err := srv.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, srv.fail(ctx, methodPattern, identifier, input.ClientIP, err)
	}

	credential, err := srv.patternRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrPatternNotFound):
		srv.hasher.Verify(input.Pattern, dummyPatternSalt, dummyPatternHash)
		return nil, srv.fail(ctx, methodPattern, identifier, input.ClientIP, domainerrors.ErrInvalidCredentials)
	case err != nil:
		srv.log(ctx).Error("Failed to load pattern", slog.Any("error", err))
		return nil, srv.fail(ctx, methodPattern, identifier, input.ClientIP,
			domainerrors.ErrLookupFailed.WithDetails(errors.Detail(err)))
	}

	if !srv.hasher.Verify(input.Pattern, credential.Salt, credential.Hash) {
		return nil, srv.fail(ctx, methodPattern, identifier, input.ClientIP, domainerrors.ErrInvalidCredentials)
	}

	session, err := srv.provider.IssueOneTimeSession(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session after pattern match", slog.Any("error", err))
		mapped := mapProviderError(err, domainerrors.ErrSessionIssueFailed)
		if errors.Is(mapped, domainerrors.ErrProviderUnavailable) {
			mapped = domainerrors.ErrSessionIssueFailed.WithDetails(service.ProviderErrorDetailOf(err))
		}
		return nil, srv.fail(ctx, methodPattern, identifier, input.ClientIP, mapped)
	}

	return srv.complete(ctx, srv.log(ctx), methodPattern, identifier, input.ClientIP, session, input.RememberMe)
}
