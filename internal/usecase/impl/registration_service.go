package impl

import (
	"context"
	"log/slog"
	"strings"

	"gestor/config"
	deliverycontext "gestor/internal/delivery/context"
	"gestor/internal/domain/entity"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/repository"
	"gestor/internal/domain/service"
	"gestor/internal/errors"
	"gestor/internal/usecase"
	"gestor/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type registrationService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	provider    service.AuthProvider
	roleKey     string
	metrics     service.AuthMetrics
	logger      *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Provider    service.AuthProvider
	Config      *config.Config
	Metrics     service.AuthMetrics `optional:"true"`
	Logger      *slog.Logger
}

// NewRegistrationService creates the registration service.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	roleKey := entity.DefaultRoleKey
	if params.Config.Profile != nil && params.Config.Profile.DefaultRole != "" {
		roleKey = params.Config.Profile.DefaultRole
	}

	return &registrationService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		provider:    params.Provider,
		roleKey:     roleKey,
		metrics:     metricsOrNoop(params.Metrics),
		logger:      params.Logger,
	}
}

func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register signs the account up with the provider, then inserts its profile and
// default role in one transaction.
func (srv *registrationService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := util.NormalizeEmail(input.Email)
	givenNames := strings.TrimSpace(input.GivenNames)
	surnames := strings.TrimSpace(input.Surnames)
	phone := util.NormalizePhone(input.Phone)

	if !util.IsUsername(username) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("usuario inválido")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	taken, err := srv.profileRepo.UsernameExists(ctx, username)
	if err != nil {
		srv.log(ctx).Error("Failed to check username", slog.Any("error", err))
		return nil, domainerrors.ErrLookupFailed.WithDetails(errors.Detail(err))
	}
	if taken {
		return nil, domainerrors.ErrDuplicateUsername
	}

	metadata := map[string]any{
		entity.MetaUsername:   username,
		entity.MetaFullName:   strings.TrimSpace(givenNames + " " + surnames),
		entity.MetaGivenNames: givenNames,
		entity.MetaSurnames:   surnames,
	}
	if phone != "" {
		metadata[entity.MetaPhone] = phone
	}

	result, err := srv.provider.SignUp(ctx, email, input.Password, metadata)
	if err != nil {
		srv.log(ctx).Info("Provider sign-up rejected", slog.Any("error", err))
		return nil, signUpError(err)
	}
	if result.Account == nil || result.Account.ID == uuid.Nil {
		return nil, domainerrors.ErrSignupFailed.WithDetails("missing account id")
	}

	profile := &entity.Profile{
		AccountID:  result.Account.ID,
		Username:   username,
		Email:      email,
		Phone:      phone,
		GivenNames: givenNames,
		Surnames:   surnames,
		Active:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProfileRepository().Create(ctx, profile); err != nil {
			return err
		}
		assignDefaultRole(ctx, srv.log(ctx), repoFactory.NewRoleRepository(), srv.roleKey, profile)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to insert profile after sign-up",
			slog.String("account_id", result.Account.ID.String()),
			slog.Any("error", err),
		)
		return nil, profileInsertError(err)
	}

	srv.metrics.ObserveProfileCreated()
	srv.log(ctx).Info("Registration completed", slog.String("profile_id", profile.ID.String()))

	return &usecase.RegisterOutput{
		Profile:              profile,
		Session:              result.Session,
		ConfirmationRequired: result.Session == nil,
	}, nil
}

func signUpError(err error) error {
	detail := service.ProviderErrorDetailOf(err)
	if kind, ok := service.ProviderErrorKindOf(err); ok && kind == service.ProviderAlreadyRegistered {
		return domainerrors.ErrEmailInUse.WithDetails(detail)
	}

	return mapProviderError(err, domainerrors.ErrSignupFailed.WithDetails(detail))
}

// profileInsertError maps unique violations to the conflict code of the
// violated constraint.
func profileInsertError(err error) error {
	var constraintErr *repository.ConstraintError
	if !errors.As(err, &constraintErr) {
		return domainerrors.ErrInsertFailed.WithDetails(errors.Detail(err))
	}

	switch constraintErr.Constraint {
	case repository.ConstraintProfileEmail:
		return domainerrors.ErrDuplicateEmail
	case repository.ConstraintProfileUsername:
		return domainerrors.ErrDuplicateUsername
	case repository.ConstraintProfileAccountID:
		return domainerrors.ErrDuplicateAccount
	default:
		return domainerrors.ErrDuplicate.WithDetails(constraintErr.Constraint)
	}
}
