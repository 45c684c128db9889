package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

var _ ports.RoleRepository = (*RoleRepository)(nil)

func (r *RoleRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	var role domain.Role
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) List(ctx context.Context, filter ports.RoleFilter) ([]domain.Role, error) {
	q := r.db.WithContext(ctx).Model(&domain.Role{})
	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	for _, cap := range filter.Capabilities {
		if !cap.Valid() {
			return nil, domain.ErrInvalidInput
		}
		q = q.Where(string(cap) + " = 1")
	}

	var roles []domain.Role
	err := q.Order("ordinal").Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) NextOrdinal(ctx context.Context) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Model(&domain.Role{}).
		Select("COALESCE(MAX(ordinal), -1) + 1").
		Scan(&next).Error
	return next, err
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	err := r.db.WithContext(ctx).Create(role).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrRoleExists
	}
	return err
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) error {
	err := r.db.WithContext(ctx).Save(role).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrRoleExists
	}
	return err
}

func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&domain.Role{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}
