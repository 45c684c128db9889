// Package token implements the stateless session token codec.
//
// A session token is a JWT (HS256) carrying exactly two claims: the
// user identity and their role identity. There is no expiry and no
// server-side record: validity is purely the signature check. The
// delivery cookie, not the token, bounds the session's lifetime.
package token

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

const (
	claimUser = "uuid"
	claimAuth = "authUuid"
)

// Claims is the decoded payload of a session token.
type Claims struct {
	UserUUID uuid.UUID
	AuthUUID uuid.UUID
}

// Codec signs and verifies session tokens with a server-held secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode issues a signed token embedding the user and role identities.
func (c *Codec) Encode(userUUID, authUUID uuid.UUID) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		claimUser: userUUID.String(),
		claimAuth: authUUID.String(),
	})
	return t.SignedString(c.secret)
}

// Decode verifies the signature and extracts the embedded identities.
// Any failure (bad signature, wrong algorithm, malformed or missing
// claims) collapses to domain.ErrInvalidToken.
func (c *Codec) Decode(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, domain.ErrInvalidToken
	}

	userUUID, err := uuidClaim(claims, claimUser)
	if err != nil {
		return Claims{}, err
	}
	authUUID, err := uuidClaim(claims, claimAuth)
	if err != nil {
		return Claims{}, err
	}

	return Claims{UserUUID: userUUID, AuthUUID: authUUID}, nil
}

func uuidClaim(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	s, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return id, nil
}
