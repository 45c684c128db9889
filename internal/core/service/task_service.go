package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type TaskService struct {
	repo     ports.TaskRepository
	statuses ports.StatusRepository
	logger   zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, statuses ports.StatusRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, statuses: statuses, logger: logger}
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.repo.FindByUUID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, projectUUID *uuid.UUID) ([]domain.Task, error) {
	return s.repo.List(ctx, projectUUID)
}

func (s *TaskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if _, err := s.statuses.FindByUUID(ctx, task.StatusUUID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task.UUID = uuid.New()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	current, err := s.repo.FindByUUID(ctx, task.UUID)
	if err != nil {
		return nil, err
	}
	if _, err := s.statuses.FindByUUID(ctx, task.StatusUUID); err != nil {
		return nil, err
	}

	task.CreatedAt = current.CreatedAt
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByUUID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
