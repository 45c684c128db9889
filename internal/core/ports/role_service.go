package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// CreateRoleInput carries the fields an admin supplies for a new role.
type CreateRoleInput struct {
	Name      string
	Admin     bool
	Project   bool
	Personal  bool
	Financial bool
}

// UpdateRoleInput mirrors CreateRoleInput for an existing role.
type UpdateRoleInput struct {
	UUID      uuid.UUID
	Name      string
	Admin     bool
	Project   bool
	Personal  bool
	Financial bool
}

// RoleService implements role CRUD with the mutation guards: mutations
// require the caller's role to grant admin, the default role is
// immutable, and a role still referenced by users cannot be deleted.
type RoleService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	List(ctx context.Context, filter RoleFilter) ([]domain.Role, error)
	Create(ctx context.Context, callerAuth uuid.UUID, input CreateRoleInput) (*domain.Role, error)
	Update(ctx context.Context, callerAuth uuid.UUID, input UpdateRoleInput) (*domain.Role, error)
	Delete(ctx context.Context, callerAuth uuid.UUID, id uuid.UUID) error
}
