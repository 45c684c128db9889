package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
	"github.com/gestorlabs/gestor/internal/core/token"
)

// AuthService validates login credentials and issues session tokens.
type AuthService struct {
	users  ports.UserRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, logger: logger}
}

// Login resolves the user by the tagged identifier, checks the active
// flag before the password, compares the password against the stored
// bcrypt hash and, on success, returns a signed session token.
//
// The active check deliberately precedes the password comparison, and
// not-found / inactive / bad-password each surface distinct errors.
// This leaks account existence to unauthenticated callers; the
// behaviour is inherited from the product contract and kept as is.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (string, *domain.User, error) {
	user, err := s.users.FindByIdentifier(ctx, input.Identifier)
	if err != nil {
		return "", nil, err
	}

	if !user.Active {
		return "", nil, domain.ErrUserInactive
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Encode(user.UUID, user.AuthUUID)
	if err != nil {
		s.logger.Error().Err(err).Str("user", user.UUID.String()).Msg("failed to sign session token")
		return "", nil, err
	}

	s.logger.Info().Str("user", user.UUID.String()).Bool("remember_me", input.RememberMe).Msg("user logged in")
	return tok, user, nil
}
