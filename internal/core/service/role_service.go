package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

// RoleService implements role CRUD with the mutation guards. Checks run
// in a fixed order (target existence, caller authorization, protected
// default role, dependents) and the first failure short-circuits,
// leaving the store untouched.
type RoleService struct {
	roles  ports.RoleRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, users ports.UserRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, users: users, logger: logger}
}

func (s *RoleService) Get(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	return s.roles.FindByUUID(ctx, id)
}

func (s *RoleService) List(ctx context.Context, filter ports.RoleFilter) ([]domain.Role, error) {
	return s.roles.List(ctx, filter)
}

func (s *RoleService) Create(ctx context.Context, callerAuth uuid.UUID, input ports.CreateRoleInput) (*domain.Role, error) {
	if err := s.requireAdmin(ctx, callerAuth); err != nil {
		return nil, err
	}

	ordinal, err := s.roles.NextOrdinal(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	role := &domain.Role{
		UUID:      uuid.New(),
		Name:      input.Name,
		Ordinal:   ordinal,
		Admin:     input.Admin,
		Project:   input.Project,
		Personal:  input.Personal,
		Financial: input.Financial,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info().Str("role", role.UUID.String()).Str("name", role.Name).Msg("role created")
	return role, nil
}

func (s *RoleService) Update(ctx context.Context, callerAuth uuid.UUID, input ports.UpdateRoleInput) (*domain.Role, error) {
	role, err := s.roles.FindByUUID(ctx, input.UUID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(ctx, callerAuth); err != nil {
		return nil, err
	}
	if role.IsDefault() {
		return nil, domain.ErrRoleProtected
	}

	role.Name = input.Name
	role.Admin = input.Admin
	role.Project = input.Project
	role.Personal = input.Personal
	role.Financial = input.Financial
	role.UpdatedAt = time.Now().UTC()

	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info().Str("role", role.UUID.String()).Msg("role updated")
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, callerAuth uuid.UUID, id uuid.UUID) error {
	role, err := s.roles.FindByUUID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireAdmin(ctx, callerAuth); err != nil {
		return err
	}
	if role.IsDefault() {
		return domain.ErrRoleProtected
	}

	refs, err := s.users.CountByAuth(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrRoleInUse
	}

	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("role", id.String()).Msg("role deleted")
	return nil
}

func (s *RoleService) requireAdmin(ctx context.Context, callerAuth uuid.UUID) error {
	caller, err := s.roles.FindByUUID(ctx, callerAuth)
	if err != nil || !caller.Grants(domain.CapabilityAdmin) {
		return &domain.MissingCapabilityError{Capability: domain.CapabilityAdmin}
	}
	return nil
}
