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
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	provider    *mockSvc.MockAuthProvider
	profileRepo *mockRepo.MockProfileRepository
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	provider := mockSvc.NewMockAuthProvider(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return accountServiceFixtures{
		service: NewAccountService(AccountServiceParams{
			Provider:    provider,
			ProfileRepo: profileRepo,
			Logger:      testLogger(),
		}),
		provider:    provider,
		profileRepo: profileRepo,
	}
}

func TestAccountService_Me(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := testAccount("ana@example.com")
	profile := &entity.Profile{ID: uuid.New(), AccountID: account.ID, Username: "ana"}

	fx.provider.EXPECT().GetUser(ctx, "access-token").Return(account, nil)
	fx.profileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(profile, nil)

	output, err := fx.service.Me(ctx, "access-token")

	require.NoError(t, err)
	assert.Same(t, account, output.Account)
	assert.Same(t, profile, output.Profile)
}

func TestAccountService_Me_ProfileIsBestEffort(t *testing.T) {
	for name, lookupErr := range map[string]error{
		"not found":     repository.ErrProfileNotFound,
		"store failure": errors.New("connection refused"),
	} {
		t.Run(name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()
			account := testAccount("ana@example.com")
			fx.provider.EXPECT().GetUser(ctx, "access-token").Return(account, nil)
			fx.profileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(nil, lookupErr)

			output, err := fx.service.Me(ctx, "access-token")

			require.NoError(t, err)
			assert.Same(t, account, output.Account)
			assert.Nil(t, output.Profile)
		})
	}
}

func TestAccountService_Me_Failures(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.Me(context.Background(), "")

		assert.ErrorIs(t, err, domainerrors.ErrMissingToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		fx.provider.EXPECT().GetUser(ctx, "forged").Return(nil, providerError(service.ProviderInvalidToken, "invalid JWT"))

		_, err := fx.service.Me(ctx, "forged")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("provider outage", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		fx.provider.EXPECT().GetUser(ctx, "access-token").Return(nil, &service.ProviderError{Kind: service.ProviderUnavailable, Status: 503})

		_, err := fx.service.Me(ctx, "access-token")

		assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
	})
}
