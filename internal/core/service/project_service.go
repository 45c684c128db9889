package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type ProjectService struct {
	repo     ports.ProjectRepository
	clients  ports.ClientRepository
	statuses ports.StatusRepository
	logger   zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, clients ports.ClientRepository, statuses ports.StatusRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, clients: clients, statuses: statuses, logger: logger}
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.repo.FindByUUID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProjectService) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := s.checkReferences(ctx, project); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project.UUID = uuid.New()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project", project.UUID.String()).Str("name", project.Name).Msg("project created")
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	current, err := s.repo.FindByUUID(ctx, project.UUID)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, project); err != nil {
		return nil, err
	}

	project.CreatedAt = current.CreatedAt
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByUUID(ctx, id); err != nil {
		return err
	}

	busy, err := s.repo.HasDependents(ctx, id)
	if err != nil {
		return err
	}
	if busy {
		return domain.ErrHasDependents
	}

	return s.repo.Delete(ctx, id)
}

func (s *ProjectService) checkReferences(ctx context.Context, project *domain.Project) error {
	if _, err := s.clients.FindByUUID(ctx, project.ClientUUID); err != nil {
		return err
	}
	if _, err := s.statuses.FindByUUID(ctx, project.StatusUUID); err != nil {
		return err
	}
	return nil
}
