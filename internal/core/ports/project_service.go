package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// ProjectFilter narrows project listings. Nil fields select everything.
type ProjectFilter struct {
	ClientUUID *uuid.UUID
	StatusUUID *uuid.UUID
}

type ProjectRepository interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasDependents(ctx context.Context, id uuid.UUID) (bool, error)
}

type ProjectService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
