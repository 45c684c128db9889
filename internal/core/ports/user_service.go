package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// CreateUserInput carries the provisioning fields for a new user.
// Password arrives in plain text and is hashed by the service.
type CreateUserInput struct {
	Name     string
	Email    string
	CPF      string
	Username string
	Password string
	AuthUUID uuid.UUID
}

// UpdateUserInput updates profile fields. A nil Password leaves the
// stored hash untouched.
type UpdateUserInput struct {
	UUID     uuid.UUID
	Name     string
	Email    string
	CPF      string
	Username string
	Password string
	Active   bool
	AuthUUID uuid.UUID
}

// UserService implements user CRUD. Users are never hard-deleted while
// referenced; Deactivate flips Active off instead.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
