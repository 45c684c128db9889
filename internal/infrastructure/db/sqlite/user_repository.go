package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByIdentifier(ctx context.Context, id domain.Identifier) (*domain.User, error) {
	var column string
	switch id.Field {
	case domain.ByEmail:
		column = "email"
	case domain.ByCPF:
		column = "cpf"
	case domain.ByUsername:
		column = "username"
	default:
		return nil, domain.ErrInvalidInput
	}

	var user domain.User
	err := r.db.WithContext(ctx).Where(column+" = ?", id.Value).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("name").Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUserExists
	}
	return err
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUserExists
	}
	return err
}

func (r *UserRepository) CountByAuth(ctx context.Context, authUUID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("auth_uuid = ?", authUUID).
		Count(&count).Error
	return count, err
}
