package impl

import (
	"context"
	"fmt"
	"log/slog"

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

const (
	defaultSequentialProbes = 6
	defaultInsertRetries    = 3
	randomSuffixLength      = 6
	accountIDPrefixLength   = 8
)

type profileReconciler struct {
	profileRepo      repository.ProfileRepository
	roleRepo         repository.RoleRepository
	roleKey          string
	sequentialProbes int
	insertRetries    int
	randomSuffix     func() string
	metrics          service.AuthMetrics
	logger           *slog.Logger
}

// ProfileReconcilerParams holds dependencies for the reconciler, injected by Fx.
type ProfileReconcilerParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	RoleRepo    repository.RoleRepository
	Config      *config.Config
	Metrics     service.AuthMetrics `optional:"true"`
	Logger      *slog.Logger
}

// NewProfileReconciler creates the profile reconciler.
func NewProfileReconciler(params ProfileReconcilerParams) usecase.ProfileReconciler {
	srv := &profileReconciler{
		profileRepo:      params.ProfileRepo,
		roleRepo:         params.RoleRepo,
		roleKey:          entity.DefaultRoleKey,
		sequentialProbes: defaultSequentialProbes,
		insertRetries:    defaultInsertRetries,
		randomSuffix:     func() string { return util.RandomSuffix(randomSuffixLength) },
		metrics:          metricsOrNoop(params.Metrics),
		logger:           params.Logger,
	}
	if cfg := params.Config.Profile; cfg != nil {
		if cfg.DefaultRole != "" {
			srv.roleKey = cfg.DefaultRole
		}
		if cfg.MaxSequentialProbes > 0 {
			srv.sequentialProbes = cfg.MaxSequentialProbes
		}
		if cfg.MaxInsertRetries > 0 {
			srv.insertRetries = cfg.MaxInsertRetries
		}
	}

	return srv
}

func (srv *profileReconciler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureProfile returns the profile of account, creating it on first sight.
// Concurrent calls for the same account converge on one row: the loser of the
// insert race re-reads the winner's profile.
func (srv *profileReconciler) EnsureProfile(ctx context.Context, account *entity.Account) (*entity.Profile, error) {
	if account == nil || account.ID == uuid.Nil {
		return nil, domainerrors.ErrInternalError.WithDetails("account without id")
	}

	existing, err := srv.findByAccount(ctx, account.ID)
	if err != nil || existing != nil {
		return existing, err
	}

	base := usernameBase(account)
	profile := newProfileFor(account)

	attempt := 0
	for retries := 0; ; retries++ {
		profile.Username, attempt, err = srv.freeUsername(ctx, base, attempt)
		if err != nil {
			return nil, err
		}

		err = srv.profileRepo.Create(ctx, profile)
		if err == nil {
			srv.metrics.ObserveProfileCreated()
			srv.log(ctx).Info("Profile created",
				slog.String("profile_id", profile.ID.String()),
				slog.String("account_id", account.ID.String()),
				slog.String("username", profile.Username),
			)
			assignDefaultRole(ctx, srv.log(ctx), srv.roleRepo, srv.roleKey, profile)

			return profile, nil
		}

		var constraintErr *repository.ConstraintError
		if !errors.As(err, &constraintErr) {
			srv.log(ctx).Error("Failed to insert profile", slog.Any("error", err))
			return nil, domainerrors.ErrInsertFailed.WithDetails(errors.Detail(err))
		}

		// Another request may have created this account's profile meanwhile.
		winner, findErr := srv.findByAccount(ctx, account.ID)
		if findErr != nil || winner != nil {
			return winner, findErr
		}

		switch constraintErr.Constraint {
		case repository.ConstraintProfileUsername, "":
			if retries >= srv.insertRetries {
				return nil, domainerrors.ErrDuplicateUsername
			}
			srv.log(ctx).Debug("Username taken concurrently, trying next candidate",
				slog.String("username", profile.Username),
			)
			attempt++
		case repository.ConstraintProfileEmail:
			return nil, domainerrors.ErrDuplicateEmail
		default:
			return nil, domainerrors.ErrDuplicate.WithDetails(constraintErr.Constraint)
		}
	}
}

// findByAccount returns (nil, nil) when the account has no profile yet.
func (srv *profileReconciler) findByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByAccountID(ctx, accountID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up profile", slog.String("account_id", accountID.String()), slog.Any("error", err))
		return nil, domainerrors.ErrLookupFailed.WithDetails(errors.Detail(err))
	}

	return profile, nil
}

// freeUsername walks the candidate sequence from attempt and returns the first
// name not yet taken, together with its position. Random candidates are not
// probed; the unique index arbitrates them.
func (srv *profileReconciler) freeUsername(ctx context.Context, base string, attempt int) (string, int, error) {
	for ; ; attempt++ {
		candidate := srv.candidate(base, attempt)
		if attempt > srv.sequentialProbes {
			return candidate, attempt, nil
		}

		taken, err := srv.profileRepo.UsernameExists(ctx, candidate)
		if err != nil {
			srv.log(ctx).Error("Failed to probe username", slog.String("username", candidate), slog.Any("error", err))
			return "", attempt, domainerrors.ErrLookupFailed.WithDetails(errors.Detail(err))
		}
		if !taken {
			return candidate, attempt, nil
		}
	}
}

// candidate is base, then base-01 .. base-NN, then base-<random>.
func (srv *profileReconciler) candidate(base string, attempt int) string {
	switch {
	case attempt == 0:
		return base
	case attempt <= srv.sequentialProbes:
		return util.WithSuffix(base, fmt.Sprintf("%02d", attempt))
	default:
		return util.WithSuffix(base, srv.randomSuffix())
	}
}

// usernameBase prefers metadata.username, then the email local part, then user-<id prefix>.
func usernameBase(account *entity.Account) string {
	raw := account.MetadataString(entity.MetaUsername)
	if raw == "" {
		raw = account.EmailLocalPart()
	}
	if raw == "" {
		raw = "user-" + account.ID.String()[:accountIDPrefixLength]
	}

	return util.SanitizeUsername(raw)
}

func newProfileFor(account *entity.Account) *entity.Profile {
	givenNames := account.MetadataString(entity.MetaGivenNames)
	surnames := account.MetadataString(entity.MetaSurnames)
	if givenNames == "" && surnames == "" {
		givenNames, surnames = entity.SplitFullName(account.MetadataString(entity.MetaFullName))
	}

	phone := account.MetadataString(entity.MetaPhone)
	if phone == "" {
		phone = account.Phone
	}

	return &entity.Profile{
		AccountID:  account.ID,
		Email:      util.NormalizeEmail(account.Email),
		Phone:      util.NormalizePhone(phone),
		GivenNames: givenNames,
		Surnames:   surnames,
		Active:     true,
	}
}
