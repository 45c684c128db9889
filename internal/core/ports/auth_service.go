package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// LoginInput carries a resolved login attempt: one identifying field,
// already tagged at the request boundary, plus the plain password.
type LoginInput struct {
	Identifier domain.Identifier
	Password   string
	RememberMe bool
}

// AuthService authenticates credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (string, *domain.User, error)
}

// AuthzService answers capability questions about roles.
type AuthzService interface {
	// Authorized is a pure predicate: true only when the role exists
	// and literally grants the capability.
	Authorized(ctx context.Context, cap domain.Capability, authUUID uuid.UUID) bool

	// Check asserts every requested-true capability in fixed order and
	// fails on the first one missing, without aggregating the rest.
	Check(ctx context.Context, authUUID uuid.UUID, required map[domain.Capability]bool) error
}
