package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.FindByUUID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	now := time.Now().UTC()
	client.UUID = uuid.New()
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info().Str("client", client.UUID.String()).Str("name", client.Name).Msg("client created")
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	current, err := s.repo.FindByUUID(ctx, client.UUID)
	if err != nil {
		return nil, err
	}

	client.CreatedAt = current.CreatedAt
	client.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete refuses to remove a client still referenced by projects or
// transactions.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
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
