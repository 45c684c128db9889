package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/token"
)

// Context keys and cookie name shared by the session gate, the
// capability gate and the handlers.
const (
	CookieName  = "token"
	CtxUserUUID = "uuid"
	CtxAuthUUID = "authUuid"
)

type messageResponse struct {
	Message string `json:"message"`
}

// Session is the request gate: it locates the session token in the
// `token` cookie, verifies its signature and exposes the decoded
// identities to downstream handlers. Tokens are never refreshed or
// rotated here.
func Session(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Usuário não autenticado!"})
			}

			claims, err := codec.Decode(cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Token inválido!"})
			}

			c.Set(CtxUserUUID, claims.UserUUID)
			c.Set(CtxAuthUUID, claims.AuthUUID)

			return next(c)
		}
	}
}
