package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// stubAuthz grants exactly the capabilities listed for a single role.
type stubAuthz struct {
	authUUID uuid.UUID
	granted  map[domain.Capability]bool
}

func (s *stubAuthz) Authorized(_ context.Context, cap domain.Capability, authUUID uuid.UUID) bool {
	return authUUID == s.authUUID && s.granted[cap]
}

func (s *stubAuthz) Check(_ context.Context, authUUID uuid.UUID, required map[domain.Capability]bool) error {
	for _, cap := range domain.Capabilities {
		if !required[cap] {
			continue
		}
		if authUUID != s.authUUID || !s.granted[cap] {
			return &domain.MissingCapabilityError{Capability: cap}
		}
	}
	return nil
}

func TestCapability_Allows(t *testing.T) {
	e := echo.New()
	authUUID := uuid.New()
	authz := &stubAuthz{authUUID: authUUID, granted: map[domain.Capability]bool{domain.CapabilityFinancial: true}}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxAuthUUID, authUUID)

	called := false
	handler := Capability(authz, domain.CapabilityFinancial)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d (called=%v)", rec.Code, called)
	}
}

func TestCapability_Denies(t *testing.T) {
	e := echo.New()
	authUUID := uuid.New()
	authz := &stubAuthz{authUUID: authUUID, granted: map[domain.Capability]bool{}}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxAuthUUID, authUUID)

	handler := Capability(authz, domain.CapabilityAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "configurações do sistema") {
		t.Fatalf("denial must name the protected data: %s", rec.Body.String())
	}
}

func TestCapability_NoSession(t *testing.T) {
	e := echo.New()
	authz := &stubAuthz{authUUID: uuid.New(), granted: map[domain.Capability]bool{domain.CapabilityAdmin: true}}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// Session middleware never ran: no authUuid in context.

	handler := Capability(authz, domain.CapabilityAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
