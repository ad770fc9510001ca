package impl

import (
	"context"
	"testing"

	"gestor/internal/domain/entity"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/repository"
	"gestor/internal/domain/service"
	mockRepo "gestor/internal/mocks/repository"
	mockSvc "gestor/internal/mocks/service"
	"gestor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrationServiceFixtures struct {
	service     usecase.RegistrationUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	provider    *mockSvc.MockAuthProvider
	metrics     *mockSvc.MockAuthMetrics
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	provider := mockSvc.NewMockAuthProvider(t)
	metrics := mockSvc.NewMockAuthMetrics(t)

	service := NewRegistrationService(RegistrationServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		Provider:    provider,
		Config:      testConfig(),
		Metrics:     metrics,
		Logger:      testLogger(),
	})

	return registrationServiceFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
		provider:    provider,
		metrics:     metrics,
	}
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username:   "Ana.Perez",
		Email:      " Ana@Example.com ",
		Password:   "s3cret!pass",
		GivenNames: "Ana María",
		Surnames:   "Pérez Soto",
		Phone:      "987 654 321",
	}
}

// expectInsert runs the transaction body against tx-scoped mocks. createErr is
// returned by the profile insert.
func (fx registrationServiceFixtures) expectInsert(t *testing.T, ctx context.Context, createErr error, withRole bool) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(_ context.Context, p *entity.Profile) { p.ID = uuid.New() }).
				Return(createErr)

			if withRole {
				mockRoleRepo := mockRepo.NewMockRoleRepository(t)
				mockFactory.EXPECT().NewRoleRepository().Return(mockRoleRepo)
				mockRoleRepo.EXPECT().FindByKey(ctx, entity.DefaultRoleKey).Return(testRole, nil)
				mockRoleRepo.EXPECT().Assign(ctx, mock.AnythingOfType("uuid.UUID"), testRole.ID).Return(nil)
			}

			return fn(mockFactory)
		})
}

func TestRegistrationService_Register_Success(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com"}
	session := testSession(account)

	fx.profileRepo.EXPECT().UsernameExists(ctx, "ana.perez").Return(false, nil)
	fx.provider.EXPECT().
		SignUp(ctx, "ana@example.com", "s3cret!pass", mock.MatchedBy(func(m map[string]any) bool {
			return m[entity.MetaUsername] == "ana.perez" &&
				m[entity.MetaFullName] == "Ana María Pérez Soto" &&
				m[entity.MetaGivenNames] == "Ana María" &&
				m[entity.MetaSurnames] == "Pérez Soto" &&
				m[entity.MetaPhone] == "+51987654321"
		})).
		Return(&service.SignUpResult{Account: account, Session: session}, nil)
	fx.expectInsert(t, ctx, nil, true)
	fx.metrics.EXPECT().ObserveProfileCreated().Return()

	output, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, account.ID, output.Profile.AccountID)
	assert.Equal(t, "ana.perez", output.Profile.Username)
	assert.Equal(t, "ana@example.com", output.Profile.Email)
	assert.Equal(t, "+51987654321", output.Profile.Phone)
	assert.NotEqual(t, uuid.Nil, output.Profile.ID)
	assert.Same(t, session, output.Session)
	assert.False(t, output.ConfirmationRequired)
}

func TestRegistrationService_Register_ConfirmationRequired(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().UsernameExists(ctx, "ana.perez").Return(false, nil)
	fx.provider.EXPECT().
		SignUp(ctx, "ana@example.com", "s3cret!pass", mock.Anything).
		Return(&service.SignUpResult{Account: &entity.Account{ID: uuid.New(), Email: "ana@example.com"}}, nil)
	fx.expectInsert(t, ctx, nil, true)
	fx.metrics.EXPECT().ObserveProfileCreated().Return()

	output, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.Nil(t, output.Session)
	assert.True(t, output.ConfirmationRequired)
}

func TestRegistrationService_Register_RejectedBeforeSignUp(t *testing.T) {
	t.Run("invalid username", func(t *testing.T) {
		fx := createTestRegistrationService(t)
		input := validRegisterInput()
		input.Username = "a!"

		_, err := fx.service.Register(context.Background(), input)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("username taken", func(t *testing.T) {
		fx := createTestRegistrationService(t)
		ctx := context.Background()
		fx.profileRepo.EXPECT().UsernameExists(ctx, "ana.perez").Return(true, nil)

		_, err := fx.service.Register(ctx, validRegisterInput())

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
	})

	t.Run("lookup failure", func(t *testing.T) {
		fx := createTestRegistrationService(t)
		ctx := context.Background()
		fx.profileRepo.EXPECT().UsernameExists(ctx, "ana.perez").Return(false, errors.New("connection refused"))

		_, err := fx.service.Register(ctx, validRegisterInput())

		assert.ErrorIs(t, err, domainerrors.ErrLookupFailed)
	})
}

func TestRegistrationService_Register_ProviderFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "already registered",
			err:     providerError(service.ProviderAlreadyRegistered, "User already registered"),
			wantErr: domainerrors.ErrEmailInUse,
		},
		{
			name:    "weak password",
			err:     providerError(service.ProviderRejected, "Password should be at least 6 characters"),
			wantErr: domainerrors.ErrSignupFailed,
		},
		{
			name:    "timeout",
			err:     &service.ProviderError{Kind: service.ProviderTimeout},
			wantErr: domainerrors.ErrSessionTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRegistrationService(t)
			ctx := context.Background()
			fx.profileRepo.EXPECT().UsernameExists(ctx, "ana.perez").Return(false, nil)
			fx.provider.EXPECT().SignUp(ctx, "ana@example.com", "s3cret!pass", mock.Anything).Return(nil, tt.err)

			_, err := fx.service.Register(ctx, validRegisterInput())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistrationService_Register_ProfileConflicts(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{name: "email", constraint: repository.ConstraintProfileEmail, wantErr: domainerrors.ErrDuplicateEmail},
		{name: "username", constraint: repository.ConstraintProfileUsername, wantErr: domainerrors.ErrDuplicateUsername},
		{name: "account", constraint: repository.ConstraintProfileAccountID, wantErr: domainerrors.ErrDuplicateAccount},
		{name: "unknown", constraint: "profiles_other_key", wantErr: domainerrors.ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRegistrationService(t)
			ctx := context.Background()
			fx.profileRepo.EXPECT().UsernameExists(ctx, "ana.perez").Return(false, nil)
			fx.provider.EXPECT().
				SignUp(ctx, "ana@example.com", "s3cret!pass", mock.Anything).
				Return(&service.SignUpResult{Account: &entity.Account{ID: uuid.New()}}, nil)
			fx.expectInsert(t, ctx, &repository.ConstraintError{Constraint: tt.constraint, Err: errors.New("duplicate key")}, false)

			_, err := fx.service.Register(ctx, validRegisterInput())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistrationService_Register_InsertFailure(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().UsernameExists(ctx, "ana.perez").Return(false, nil)
	fx.provider.EXPECT().
		SignUp(ctx, "ana@example.com", "s3cret!pass", mock.Anything).
		Return(&service.SignUpResult{Account: &entity.Account{ID: uuid.New()}}, nil)
	fx.expectInsert(t, ctx, errors.New("connection reset by peer"), false)

	_, err := fx.service.Register(ctx, validRegisterInput())

	require.ErrorIs(t, err, domainerrors.ErrInsertFailed)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "connection reset by peer", appErr.Details())
}

func TestRegistrationService_Register_MissingAccountID(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().UsernameExists(ctx, "ana.perez").Return(false, nil)
	fx.provider.EXPECT().
		SignUp(ctx, "ana@example.com", "s3cret!pass", mock.Anything).
		Return(&service.SignUpResult{Account: &entity.Account{}}, nil)

	_, err := fx.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrSignupFailed)
}
