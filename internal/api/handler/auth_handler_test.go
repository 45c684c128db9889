package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/api/middleware"
	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, input ports.LoginInput) (string, *domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, input ports.LoginInput) (string, *domain.User, error) {
	return s.loginFn(ctx, input)
}

type stubAuthzService struct {
	checkFn func(ctx context.Context, authUUID uuid.UUID, required map[domain.Capability]bool) error
}

func (s *stubAuthzService) Authorized(ctx context.Context, cap domain.Capability, authUUID uuid.UUID) bool {
	return s.checkFn(ctx, authUUID, map[domain.Capability]bool{cap: true}) == nil
}

func (s *stubAuthzService) Check(ctx context.Context, authUUID uuid.UUID, required map[domain.Capability]bool) error {
	return s.checkFn(ctx, authUUID, required)
}

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, input ports.LoginInput) (string, *domain.User, error) {
			if input.Identifier.Field != domain.ByEmail || input.Identifier.Value != "ana@example.com" {
				t.Fatalf("unexpected identifier: %+v", input.Identifier)
			}
			return "signed-token", &domain.User{Name: "Ana"}, nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthzService{}, "example.com")

	c, rec := newLoginContext(e, `{"email":"ana@example.com","password":"Segredo1!"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Usuário autenticado com sucesso!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}

	ck := sessionCookie(t, rec)
	if ck.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %q", ck.Value)
	}
	if !ck.HttpOnly || !ck.Secure {
		t.Fatal("cookie must be HttpOnly and Secure")
	}
	if ck.SameSite != http.SameSiteNoneMode {
		t.Fatalf("expected SameSite=None, got %v", ck.SameSite)
	}
	if ck.Path != "/" || ck.Domain != "example.com" {
		t.Fatalf("unexpected path/domain: %q %q", ck.Path, ck.Domain)
	}
	// Without rememberMe the cookie is session-scoped.
	if ck.MaxAge != 0 {
		t.Fatalf("expected session cookie, got MaxAge=%d", ck.MaxAge)
	}
}

func TestAuthHandler_Login_RememberMe(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, input ports.LoginInput) (string, *domain.User, error) {
			if !input.RememberMe {
				t.Fatal("rememberMe not propagated")
			}
			return "signed-token", &domain.User{}, nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthzService{}, "example.com")

	c, rec := newLoginContext(e, `{"username":"ana","password":"Segredo1!","rememberMe":true}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	ck := sessionCookie(t, rec)
	if ck.MaxAge != 604800 {
		t.Fatalf("expected MaxAge=604800, got %d", ck.MaxAge)
	}
}

func TestAuthHandler_Login_IdentifierPrecedence(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	var got domain.Identifier
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, input ports.LoginInput) (string, *domain.User, error) {
			got = input.Identifier
			return "tok", &domain.User{}, nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthzService{}, "example.com")

	// Email wins over cpf and username when all are present.
	c, _ := newLoginContext(e, `{"email":"ana@example.com","cpf":"529.982.247-25","username":"ana","password":"Segredo1!"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Field != domain.ByEmail {
		t.Fatalf("expected email identifier, got %v", got.Field)
	}

	// CPF wins over username.
	c, _ = newLoginContext(e, `{"cpf":"529.982.247-25","username":"ana","password":"Segredo1!"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Field != domain.ByCPF {
		t.Fatalf("expected cpf identifier, got %v", got.Field)
	}
}

func TestAuthHandler_Login_NoIdentifier(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{}, &stubAuthzService{}, "example.com")

	c, rec := newLoginContext(e, `{"password":"Segredo1!"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Informe e-mail, CPF ou nome de usuário!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_WeakPassword(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{}, &stubAuthzService{}, "example.com")

	c, rec := newLoginContext(e, `{"email":"ana@example.com","password":"curta"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "senha") {
		t.Fatalf("expected password message, got: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		message string
	}{
		{"not found", domain.ErrUserNotFound, "Usuário não cadastrado!"},
		{"inactive", domain.ErrUserInactive, "Usuário inativo!"},
		{"bad password", domain.ErrInvalidCredentials, "Senha incorreta!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = NewValidator()
			stub := &stubAuthService{
				loginFn: func(ctx context.Context, input ports.LoginInput) (string, *domain.User, error) {
					return "", nil, tc.err
				},
			}
			h := NewAuthHandler(stub, &stubAuthzService{}, "example.com")

			c, rec := newLoginContext(e, `{"email":"ana@example.com","password":"Segredo1!"}`)
			if err := h.Login(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.message) {
				t.Fatalf("expected %q, got: %s", tc.message, rec.Body.String())
			}
			for _, ck := range rec.Result().Cookies() {
				if ck.Name == middleware.CookieName {
					t.Fatal("no cookie may be set on failure")
				}
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, &stubAuthzService{}, "example.com")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	ck := sessionCookie(t, rec)
	if ck.Value != "" || ck.MaxAge != -1 {
		t.Fatalf("expected expired empty cookie, got value=%q maxage=%d", ck.Value, ck.MaxAge)
	}
	if ck.Path != "/" || ck.Domain != "example.com" || !ck.HttpOnly {
		t.Fatal("clearing cookie must carry the same attributes as the session cookie")
	}
}

func TestAuthHandler_Permissions(t *testing.T) {
	e := echo.New()
	authUUID := uuid.New()

	authz := &stubAuthzService{
		checkFn: func(ctx context.Context, got uuid.UUID, required map[domain.Capability]bool) error {
			if got != authUUID {
				t.Fatalf("unexpected auth uuid: %s", got)
			}
			if required[domain.CapabilityAdmin] {
				return &domain.MissingCapabilityError{Capability: domain.CapabilityAdmin}
			}
			return nil
		},
	}
	h := NewAuthHandler(&stubAuthService{}, authz, "example.com")

	do := func(query string, withSession bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/auth/permissions?"+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if withSession {
			c.Set(middleware.CtxUserUUID, uuid.New())
			c.Set(middleware.CtxAuthUUID, authUUID)
		}
		err := h.Permissions(c)
		if err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec
	}

	rec := do("project=true", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Autorizado!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	rec = do("admin=true&project=true", true)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "configurações do sistema") {
		t.Fatalf("expected capability label, got: %s", rec.Body.String())
	}

	rec = do("admin=true", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}
}
