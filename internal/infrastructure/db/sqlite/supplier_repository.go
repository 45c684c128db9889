package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

var _ ports.SupplierRepository = (*SupplierRepository)(nil)

func (r *SupplierRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&supplier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	err := r.db.WithContext(ctx).Order("name").Find(&suppliers).Error
	return suppliers, err
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	err := r.db.WithContext(ctx).Create(supplier).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *SupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	err := r.db.WithContext(ctx).Save(supplier).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *SupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&domain.Supplier{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *SupplierRepository) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("supplier_uuid = ?", id).
		Count(&count).Error
	return count > 0, err
}
