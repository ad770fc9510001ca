package postgres

import (
	"context"

	"gestor/internal/domain/entity"
	"gestor/internal/domain/repository"
	"gestor/internal/errors"
	"gestor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a role repository on db.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) FindByKey(ctx context.Context, key string) (*entity.Role, error) {
	var row model.RoleModel
	err := repo.db.WithContext(ctx).Where("key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrRoleNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find role")
	}

	return &entity.Role{ID: row.ID, Key: row.Key, Name: row.Name}, nil
}

func (repo *roleRepository) Assign(ctx context.Context, profileID, roleID uuid.UUID) error {
	link := &model.ProfileRoleModel{ProfileID: profileID, RoleID: roleID}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
	if err != nil {
		return errors.Wrap(err, "failed to assign role")
	}

	return nil
}
