package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

// AuthzService answers capability questions about roles. It is a thin
// rule evaluator over the four flags, side-effect free.
type AuthzService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewAuthzService(roles ports.RoleRepository, logger zerolog.Logger) *AuthzService {
	return &AuthzService{roles: roles, logger: logger}
}

// Authorized reports whether the role grants the capability. A role
// that cannot be found yields false, not an error.
func (s *AuthzService) Authorized(ctx context.Context, cap domain.Capability, authUUID uuid.UUID) bool {
	role, err := s.roles.FindByUUID(ctx, authUUID)
	if err != nil {
		return false
	}
	return role.Grants(cap)
}

// Check asserts every requested-true capability against the caller's
// role. Capabilities are evaluated in their fixed order and the first
// one missing fails the whole check; nothing is aggregated.
func (s *AuthzService) Check(ctx context.Context, authUUID uuid.UUID, required map[domain.Capability]bool) error {
	role, err := s.roles.FindByUUID(ctx, authUUID)
	if err != nil {
		role = nil
	}

	for _, cap := range domain.Capabilities {
		if !required[cap] {
			continue
		}
		if role == nil || !role.Grants(cap) {
			return &domain.MissingCapabilityError{Capability: cap}
		}
	}
	return nil
}
