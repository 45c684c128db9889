package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// TransactionFilter narrows transaction listings. Nil/empty fields
// select everything; Paid filters on the presence of PaidAt.
type TransactionFilter struct {
	Kind        domain.TransactionKind
	ProjectUUID *uuid.UUID
	Paid        *bool
}

type TransactionRepository interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	Create(ctx context.Context, tx *domain.Transaction) error
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TransactionService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
