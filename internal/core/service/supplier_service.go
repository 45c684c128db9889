package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type SupplierService struct {
	repo   ports.SupplierRepository
	logger zerolog.Logger
}

func NewSupplierService(repo ports.SupplierRepository, logger zerolog.Logger) *SupplierService {
	return &SupplierService{repo: repo, logger: logger}
}

func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	return s.repo.FindByUUID(ctx, id)
}

func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.List(ctx)
}

func (s *SupplierService) Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	now := time.Now().UTC()
	supplier.UUID = uuid.New()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	s.logger.Info().Str("supplier", supplier.UUID.String()).Str("name", supplier.Name).Msg("supplier created")
	return supplier, nil
}

func (s *SupplierService) Update(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	current, err := s.repo.FindByUUID(ctx, supplier.UUID)
	if err != nil {
		return nil, err
	}

	supplier.CreatedAt = current.CreatedAt
	supplier.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
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
