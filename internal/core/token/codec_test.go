package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret")
	userUUID := uuid.New()
	authUUID := uuid.New()

	raw, err := codec.Encode(userUUID, authUUID)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	claims, err := codec.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.UserUUID != userUUID {
		t.Fatalf("user uuid mismatch: got %s, want %s", claims.UserUUID, userUUID)
	}
	if claims.AuthUUID != authUUID {
		t.Fatalf("auth uuid mismatch: got %s, want %s", claims.AuthUUID, authUUID)
	}
}

func TestCodec_PayloadHasExactlyTwoClaims(t *testing.T) {
	codec := NewCodec("secret")
	raw, err := codec.Encode(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(claims) != 2 {
		t.Fatalf("expected exactly 2 claims, got %d: %v", len(claims), claims)
	}
	for _, key := range []string{"uuid", "authUuid"} {
		if _, ok := claims[key]; !ok {
			t.Fatalf("claim %q missing", key)
		}
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	raw, err := NewCodec("secret-a").Encode(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := NewCodec("secret-b").Decode(raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_RejectsUnexpectedAlgorithm(t *testing.T) {
	// A token signed with "none" must never pass verification even
	// though its payload decodes.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uuid":     uuid.New().String(),
		"authUuid": uuid.New().String(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewCodec("secret").Decode(raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_GarbageInput(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := NewCodec("secret").Decode(raw); err != domain.ErrInvalidToken {
			t.Fatalf("Decode(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestCodec_MalformedClaims(t *testing.T) {
	// Correctly signed but with a non-uuid claim value.
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uuid":     "not-a-uuid",
		"authUuid": uuid.New().String(),
	})
	raw, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewCodec("secret").Decode(raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
