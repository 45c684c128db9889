package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ ports.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) List(ctx context.Context, filter ports.TransactionFilter) ([]domain.Transaction, error) {
	q := r.db.WithContext(ctx).Model(&domain.Transaction{})
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.ProjectUUID != nil {
		q = q.Where("project_uuid = ?", *filter.ProjectUUID)
	}
	if filter.Paid != nil {
		if *filter.Paid {
			q = q.Where("paid_at IS NOT NULL")
		} else {
			q = q.Where("paid_at IS NULL")
		}
	}

	var txs []domain.Transaction
	err := q.Order("due_at").Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&domain.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
