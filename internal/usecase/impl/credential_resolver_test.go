package impl

import (
	"context"
	"testing"

	"gestor/internal/domain/entity"
	domainerrors "gestor/internal/domain/errors"
	"gestor/internal/domain/repository"
	mockRepo "gestor/internal/mocks/repository"
	"gestor/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentialResolverFixtures struct {
	resolver    usecase.CredentialResolver
	profileRepo *mockRepo.MockProfileRepository
}

func createTestCredentialResolver(t *testing.T) credentialResolverFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return credentialResolverFixtures{
		resolver: NewCredentialResolver(CredentialResolverParams{
			ProfileRepo: profileRepo,
			Logger:      testLogger(),
		}),
		profileRepo: profileRepo,
	}
}

func TestCredentialResolver_EmailPassesThrough(t *testing.T) {
	fx := createTestCredentialResolver(t)

	email, err := fx.resolver.Resolve(context.Background(), "  Ana@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
}

func TestCredentialResolver_Username(t *testing.T) {
	fx := createTestCredentialResolver(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByUsername(ctx, "ana.perez").
		Return(&entity.Profile{Username: "ana.perez", Email: "Ana@Example.com"}, nil)

	email, err := fx.resolver.Resolve(ctx, "Ana.Perez")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
}

func TestCredentialResolver_PhoneIsNormalized(t *testing.T) {
	fx := createTestCredentialResolver(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByPhone(ctx, "+51987654321").
		Return(&entity.Profile{Phone: "+51987654321", Email: "ana@example.com"}, nil)

	email, err := fx.resolver.Resolve(ctx, "987 654 321")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
}

func TestCredentialResolver_UnknownIdentifiersAreInvalidCredentials(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		fx := createTestCredentialResolver(t)

		_, err := fx.resolver.Resolve(context.Background(), "   ")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("malformed", func(t *testing.T) {
		fx := createTestCredentialResolver(t)

		_, err := fx.resolver.Resolve(context.Background(), "no such user!")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		fx := createTestCredentialResolver(t)
		ctx := context.Background()
		fx.profileRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrProfileNotFound)

		_, err := fx.resolver.Resolve(ctx, "ghost")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("profile without email", func(t *testing.T) {
		fx := createTestCredentialResolver(t)
		ctx := context.Background()
		fx.profileRepo.EXPECT().FindByPhone(ctx, "+51912345678").Return(&entity.Profile{Phone: "+51912345678"}, nil)

		_, err := fx.resolver.Resolve(ctx, "+51 912 345 678")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestCredentialResolver_StoreFailure(t *testing.T) {
	fx := createTestCredentialResolver(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByUsername(ctx, "ana").
		Return(nil, errors.Wrap(errors.New("connection reset by peer"), "failed to find profile by username"))

	_, err := fx.resolver.Resolve(ctx, "ana")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLookupFailed)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "connection reset by peer", appErr.Details())
}
