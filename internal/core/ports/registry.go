package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// The registry ports cover the plain CRUD entities the application
// manages around its auth core: clients, suppliers, statuses and tasks.
// Projects and transactions get their own files because of their
// filters.

type ClientRepository interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasDependents(ctx context.Context, id uuid.UUID) (bool, error)
}

type ClientService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SupplierRepository interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
	Create(ctx context.Context, supplier *domain.Supplier) error
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasDependents(ctx context.Context, id uuid.UUID) (bool, error)
}

type SupplierService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
	Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatusRepository interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Status, error)
	List(ctx context.Context) ([]domain.Status, error)
	Create(ctx context.Context, status *domain.Status) error
	Update(ctx context.Context, status *domain.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasDependents(ctx context.Context, id uuid.UUID) (bool, error)
}

type StatusService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Status, error)
	List(ctx context.Context) ([]domain.Status, error)
	Create(ctx context.Context, status *domain.Status) (*domain.Status, error)
	Update(ctx context.Context, status *domain.Status) (*domain.Status, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskRepository interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, projectUUID *uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, projectUUID *uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
