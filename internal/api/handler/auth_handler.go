package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/api/metrics"
	"github.com/gestorlabs/gestor/internal/api/middleware"
	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

// rememberMeMaxAge bounds the delivery cookie when the caller asks to
// stay signed in. The token itself never expires; only the cookie does.
const rememberMeMaxAge = 7 * 24 * time.Hour

// AuthHandler handles login, logout and the capability query endpoint.
type AuthHandler struct {
	auth         ports.AuthService
	authz        ports.AuthzService
	cookieDomain string
}

func NewAuthHandler(auth ports.AuthService, authz ports.AuthzService, cookieDomain string) *AuthHandler {
	return &AuthHandler{auth: auth, authz: authz, cookieDomain: cookieDomain}
}

// Login authenticates a user and delivers the session token as a cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      201   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: err.Error()})
	}

	// The identifying field is resolved once, here at the boundary.
	identifier, ok := resolveIdentifier(req)
	if !ok {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Informe e-mail, CPF ou nome de usuário!"})
	}

	tok, _, err := h.auth.Login(c.Request().Context(), ports.LoginInput{
		Identifier: identifier,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return h.loginError(c, err)
	}

	h.setSessionCookie(c, tok, req.RememberMe)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Usuário autenticado com sucesso!"})
}

// Logout clears the session cookie. The token itself stays valid: a
// copy held elsewhere is not invalidated, by design.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	return c.JSON(http.StatusOK, messageResponse{Message: "Usuário desconectado!"})
}

// Permissions asserts the capabilities named in the query string
// against the caller's role.
//
// @Summary      Check capabilities of the caller's role
// @Tags         auth
// @Produce      json
// @Param        admin      query  string  false  "set to true to require the admin capability"
// @Param        project    query  string  false  "set to true to require the project capability"
// @Param        personal   query  string  false  "set to true to require the personal capability"
// @Param        financial  query  string  false  "set to true to require the financial capability"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /auth/permissions [get]
func (h *AuthHandler) Permissions(c echo.Context) error {
	_, authUUID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	required := make(map[domain.Capability]bool, len(domain.Capabilities))
	for _, cap := range domain.Capabilities {
		if c.QueryParam(string(cap)) == "true" {
			required[cap] = true
		}
	}

	if err := h.authz.Check(c.Request().Context(), authUUID, required); err != nil {
		var missing *domain.MissingCapabilityError
		if errors.As(err, &missing) {
			metrics.AuthzDeniedTotal.WithLabelValues(string(missing.Capability)).Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{
				Message: "Você não tem permissão para acessar " + missing.Capability.Label() + "!",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Autorizado!"})
}

func (h *AuthHandler) loginError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Usuário não cadastrado!"})
	case errors.Is(err, domain.ErrUserInactive):
		metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Usuário inativo!"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Senha incorreta!"})
	}
	metrics.LoginsTotal.WithLabelValues("error").Inc()
	return err
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, remember bool) {
	cookie := &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	if remember {
		cookie.MaxAge = int(rememberMeMaxAge.Seconds())
	}
	c.SetCookie(cookie)
}

// resolveIdentifier picks the identifying field once, in priority
// order email, cpf, username.
func resolveIdentifier(req loginRequest) (domain.Identifier, bool) {
	switch {
	case req.Email != "":
		return domain.Identifier{Field: domain.ByEmail, Value: req.Email}, true
	case req.CPF != "":
		return domain.Identifier{Field: domain.ByCPF, Value: req.CPF}, true
	case req.Username != "":
		return domain.Identifier{Field: domain.ByUsername, Value: req.Username}, true
	}
	return domain.Identifier{}, false
}
