package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// UserRepository defines user persistence. The auth core only reads;
// the user CRUD surface also writes.
type UserRepository interface {
	FindByIdentifier(ctx context.Context, id domain.Identifier) (*domain.User, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	CountByAuth(ctx context.Context, authUUID uuid.UUID) (int64, error)
}

// RoleFilter narrows role listings. Zero value selects everything.
type RoleFilter struct {
	Name         string
	Capabilities []domain.Capability
}

// RoleRepository defines role ("auth") persistence.
type RoleRepository interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	List(ctx context.Context, filter RoleFilter) ([]domain.Role, error)
	NextOrdinal(ctx context.Context) (int, error)
	Create(ctx context.Context, role *domain.Role) error
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}
