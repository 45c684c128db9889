package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, error) {
	q := r.db.WithContext(ctx).Model(&domain.Project{})
	if filter.ClientUUID != nil {
		q = q.Where("client_uuid = ?", *filter.ClientUUID)
	}
	if filter.StatusUUID != nil {
		q = q.Where("status_uuid = ?", *filter.StatusUUID)
	}

	var projects []domain.Project
	err := q.Order("name").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	err := r.db.WithContext(ctx).Create(project).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	err := r.db.WithContext(ctx).Save(project).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&domain.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// HasDependents reports whether any transaction or task still
// references the project.
func (r *ProjectRepository) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("project_uuid = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("project_uuid = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
