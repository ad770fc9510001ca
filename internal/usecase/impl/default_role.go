package impl

import (
	"context"
	"log/slog"

	"gestor/internal/domain/entity"
	"gestor/internal/domain/repository"
)

// assignDefaultRole links profile to the role named key. Failures are logged and
// swallowed: a missing role must never block sign-in or registration.
func assignDefaultRole(ctx context.Context, logger *slog.Logger, roles repository.RoleRepository, key string, profile *entity.Profile) {
	role, err := roles.FindByKey(ctx, key)
	if err != nil {
		logger.Warn("Default role unavailable",
			slog.String("role", key),
			slog.String("profile_id", profile.ID.String()),
			slog.Any("error", err),
		)
		return
	}

	if err := roles.Assign(ctx, profile.ID, role.ID); err != nil {
		logger.Warn("Failed to assign default role",
			slog.String("role", key),
			slog.String("profile_id", profile.ID.String()),
			slog.Any("error", err),
		)
	}
}
