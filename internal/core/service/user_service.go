package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

// UserService implements user provisioning and maintenance. Passwords
// are hashed here and the hash never leaves the service layer.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.FindByUUID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	// The referenced role must exist before the write; users are never
	// created pointing at a dangling auth.
	if _, err := s.roles.FindByUUID(ctx, input.AuthUUID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UUID:         uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		CPF:          input.CPF,
		Username:     input.Username,
		PasswordHash: string(hash),
		Active:       true,
		AuthUUID:     input.AuthUUID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user", user.UUID.String()).Str("username", user.Username).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByUUID(ctx, input.UUID)
	if err != nil {
		return nil, err
	}
	if _, err := s.roles.FindByUUID(ctx, input.AuthUUID); err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	user.CPF = input.CPF
	user.Username = input.Username
	user.Active = input.Active
	user.AuthUUID = input.AuthUUID
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user", user.UUID.String()).Msg("user updated")
	return user, nil
}

// Deactivate flips Active off. Users referenced by historical records
// are never hard-deleted.
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.FindByUUID(ctx, id)
	if err != nil {
		return err
	}

	user.Active = false
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("user", id.String()).Msg("user deactivated")
	return nil
}
