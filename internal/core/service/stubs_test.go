package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

// In-memory stand-ins for the gorm repositories, shared by the service
// tests in this package.

type stubUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) {
	r.users[u.UUID] = cloneUser(u)
}

func (r *stubUserRepo) FindByIdentifier(_ context.Context, id domain.Identifier) (*domain.User, error) {
	for _, u := range r.users {
		var match bool
		switch id.Field {
		case domain.ByEmail:
			match = u.Email == id.Value
		case domain.ByCPF:
			match = u.CPF == id.Value
		case domain.ByUsername:
			match = u.Username == id.Value
		}
		if match {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUUID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.UUID]; exists {
		return domain.ErrUserExists
	}
	r.users[user.UUID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.UUID]; !exists {
		return domain.ErrUserNotFound
	}
	r.users[user.UUID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) CountByAuth(_ context.Context, authUUID uuid.UUID) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.AuthUUID == authUUID {
			n++
		}
	}
	return n, nil
}

type stubRoleRepo struct {
	roles map[uuid.UUID]*domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[uuid.UUID]*domain.Role)}
}

func cloneRole(r *domain.Role) *domain.Role {
	clone := *r
	return &clone
}

func (r *stubRoleRepo) add(role *domain.Role) {
	r.roles[role.UUID] = cloneRole(role)
}

func (r *stubRoleRepo) FindByUUID(_ context.Context, id uuid.UUID) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return cloneRole(role), nil
}

func (r *stubRoleRepo) List(_ context.Context, filter ports.RoleFilter) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		if filter.Name != "" && role.Name != filter.Name {
			continue
		}
		granted := true
		for _, cap := range filter.Capabilities {
			if !role.Grants(cap) {
				granted = false
				break
			}
		}
		if granted {
			out = append(out, *role)
		}
	}
	return out, nil
}

func (r *stubRoleRepo) NextOrdinal(_ context.Context) (int, error) {
	next := 0
	for _, role := range r.roles {
		if role.Ordinal >= next {
			next = role.Ordinal + 1
		}
	}
	return next, nil
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) error {
	if _, exists := r.roles[role.UUID]; exists {
		return domain.ErrRoleExists
	}
	r.roles[role.UUID] = cloneRole(role)
	return nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) error {
	if _, exists := r.roles[role.UUID]; !exists {
		return domain.ErrRoleNotFound
	}
	r.roles[role.UUID] = cloneRole(role)
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, exists := r.roles[id]; !exists {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, id)
	return nil
}
