package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type StatusService struct {
	repo   ports.StatusRepository
	logger zerolog.Logger
}

func NewStatusService(repo ports.StatusRepository, logger zerolog.Logger) *StatusService {
	return &StatusService{repo: repo, logger: logger}
}

func (s *StatusService) Get(ctx context.Context, id uuid.UUID) (*domain.Status, error) {
	return s.repo.FindByUUID(ctx, id)
}

func (s *StatusService) List(ctx context.Context) ([]domain.Status, error) {
	return s.repo.List(ctx)
}

func (s *StatusService) Create(ctx context.Context, status *domain.Status) (*domain.Status, error) {
	status.UUID = uuid.New()
	status.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *StatusService) Update(ctx context.Context, status *domain.Status) (*domain.Status, error) {
	current, err := s.repo.FindByUUID(ctx, status.UUID)
	if err != nil {
		return nil, err
	}

	status.CreatedAt = current.CreatedAt

	if err := s.repo.Update(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

// Delete refuses to remove a status still referenced by projects,
// transactions or tasks.
func (s *StatusService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByUUID(ctx, id); err != nil {
		return err
	}

	busy, err := s.repo.HasDependents(ctx, id)
	if err != nil {
		return err
	}
	if busy {
		return domain.ErrStatusInUse
	}

	return s.repo.Delete(ctx, id)
}
