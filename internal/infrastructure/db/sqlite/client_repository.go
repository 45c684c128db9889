package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

var _ ports.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.WithContext(ctx).Order("name").Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	err := r.db.WithContext(ctx).Create(client).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	err := r.db.WithContext(ctx).Save(client).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&domain.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// HasDependents reports whether any project or transaction still
// references the client.
func (r *ClientRepository) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("client_uuid = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("client_uuid = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
