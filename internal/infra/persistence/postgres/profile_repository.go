package postgres

import (
	"context"
	"strings"

	"gestor/internal/domain/entity"
	"gestor/internal/domain/repository"
	"gestor/internal/errors"
	"gestor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository on db, which may be a transaction.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	return repo.first(ctx, "account_id = ?", accountID)
}

func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return repo.first(ctx, "username = ? AND active", strings.ToLower(strings.TrimSpace(username)))
}

func (repo *profileRepository) FindByPhone(ctx context.Context, phone string) (*entity.Profile, error) {
	return repo.first(ctx, "phone = ? AND active", phone)
}

func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return repo.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (repo *profileRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("username = ?", strings.ToLower(username)).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return count > 0, nil
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate profile id")
		}
		profile.ID = id
	}

	row := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateWriteError(err, "failed to create profile")
	}
	profile.CreatedAt = row.CreatedAt
	profile.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *profileRepository) first(ctx context.Context, query string, args ...any) (*entity.Profile, error) {
	var row model.ProfileModel
	err := repo.db.WithContext(ctx).Where(query, args...).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&row), nil
}

func toProfileDomain(row *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:         row.ID,
		AccountID:  row.AccountID,
		Username:   row.Username,
		Email:      derefString(row.Email),
		Phone:      derefString(row.Phone),
		GivenNames: row.GivenNames,
		Surnames:   row.Surnames,
		Active:     row.Active,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:         p.ID,
		AccountID:  p.AccountID,
		Username:   strings.ToLower(p.Username),
		Email:      nullableString(strings.ToLower(strings.TrimSpace(p.Email))),
		Phone:      nullableString(p.Phone),
		GivenNames: p.GivenNames,
		Surnames:   p.Surnames,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// Empty strings are stored as NULL so the unique email index ignores them.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
