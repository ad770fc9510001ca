package postgres

import (
	"context"
	"strings"

	"gestor/internal/domain/entity"
	"gestor/internal/domain/repository"
	"gestor/internal/errors"
	"gestor/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patternRepository struct {
	db *gorm.DB
}

// NewPatternRepository creates a pattern credential repository on db.
func NewPatternRepository(db *gorm.DB) repository.PatternRepository {
	return &patternRepository{db: db}
}

func (repo *patternRepository) Upsert(ctx context.Context, credential *entity.PatternCredential) error {
	row := &model.PatternModel{
		AccountID: credential.AccountID,
		Email:     strings.ToLower(strings.TrimSpace(credential.Email)),
		Salt:      credential.Salt,
		Hash:      credential.Hash,
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "salt", "hash", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert pattern")
	}
	credential.UpdatedAt = row.UpdatedAt

	return nil
}

// FindByEmail returns the most recently updated credential for the email.
func (repo *patternRepository) FindByEmail(ctx context.Context, email string) (*entity.PatternCredential, error) {
	var row model.PatternModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("updated_at DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrPatternNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pattern")
	}

	return &entity.PatternCredential{
		AccountID: row.AccountID,
		Email:     row.Email,
		Salt:      row.Salt,
		Hash:      row.Hash,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
