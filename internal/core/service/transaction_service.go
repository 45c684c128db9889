package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type TransactionService struct {
	repo     ports.TransactionRepository
	statuses ports.StatusRepository
	logger   zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, statuses ports.StatusRepository, logger zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, statuses: statuses, logger: logger}
}

func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.repo.FindByUUID(ctx, id)
}

func (s *TransactionService) List(ctx context.Context, filter ports.TransactionFilter) ([]domain.Transaction, error) {
	return s.repo.List(ctx, filter)
}

func (s *TransactionService) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if !tx.Kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.statuses.FindByUUID(ctx, tx.StatusUUID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx.UUID = uuid.New()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("transaction", tx.UUID.String()).
		Str("kind", string(tx.Kind)).
		Int64("amount_cents", tx.AmountCents).
		Msg("transaction created")
	return tx, nil
}

func (s *TransactionService) Update(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	current, err := s.repo.FindByUUID(ctx, tx.UUID)
	if err != nil {
		return nil, err
	}
	if !tx.Kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.statuses.FindByUUID(ctx, tx.StatusUUID); err != nil {
		return nil, err
	}

	tx.CreatedAt = current.CreatedAt
	tx.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// MarkPaid stamps PaidAt with the current time. Paying twice is a
// no-op on the original timestamp.
func (s *TransactionService) MarkPaid(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	tx, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return nil, err
	}

	if tx.PaidAt == nil {
		now := time.Now().UTC()
		tx.PaidAt = &now
		tx.UpdatedAt = now
		if err := s.repo.Update(ctx, tx); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByUUID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
