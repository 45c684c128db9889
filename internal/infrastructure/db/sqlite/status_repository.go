package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

var _ ports.StatusRepository = (*StatusRepository)(nil)

func (r *StatusRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Status, error) {
	var status domain.Status
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrStatusNotFound
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *StatusRepository) List(ctx context.Context) ([]domain.Status, error) {
	var statuses []domain.Status
	err := r.db.WithContext(ctx).Order("ordinal").Find(&statuses).Error
	return statuses, err
}

func (r *StatusRepository) Create(ctx context.Context, status *domain.Status) error {
	err := r.db.WithContext(ctx).Create(status).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *StatusRepository) Update(ctx context.Context, status *domain.Status) error {
	err := r.db.WithContext(ctx).Save(status).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *StatusRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&domain.Status{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStatusNotFound
	}
	return nil
}

// HasDependents reports whether any project, transaction or task still
// references the status.
func (r *StatusRepository) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	models := []any{&domain.Project{}, &domain.Transaction{}, &domain.Task{}}
	for _, m := range models {
		var count int64
		err := r.db.WithContext(ctx).
			Model(m).
			Where("status_uuid = ?", id).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
