package impl

import (
	"io"
	"log/slog"

	"gestor/config"
	"gestor/internal/domain/entity"
	"gestor/internal/domain/service"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			PasswordResetRedirect: "https://app.example.com/reset",
		},
		Profile: &config.ProfileConfig{
			DefaultRole:         entity.DefaultRoleKey,
			MaxSequentialProbes: 3,
			MaxInsertRetries:    2,
		},
	}
}

func providerError(kind service.ProviderErrorKind, detail string) error {
	return &service.ProviderError{Kind: kind, Status: 400, Detail: detail}
}

func testAccount(email string) *entity.Account {
	return &entity.Account{
		ID:             uuid.New(),
		Email:          email,
		EmailConfirmed: true,
		Metadata: map[string]any{
			entity.MetaUsername: "ana",
			entity.MetaFullName: "Ana María Pérez Soto",
		},
	}
}

func testSession(account *entity.Account) *entity.Session {
	return &entity.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    3600,
		TokenType:    "bearer",
		Account:      account,
	}
}
