package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/api/middleware"
)

// messageResponse is the standard envelope for success and error
// messages.
type messageResponse struct {
	Message string `json:"message"`
}

// ctxIdentity extracts the identities the session gate decoded from
// the token. Presence proves the middleware ran; a handler reached
// without them fast-fails with 401.
func ctxIdentity(c echo.Context) (userUUID, authUUID uuid.UUID, err error) {
	userUUID, ok := c.Get(middleware.CtxUserUUID).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Usuário não autenticado!")
	}
	authUUID, ok = c.Get(middleware.CtxAuthUUID).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Usuário não autenticado!")
	}
	return userUUID, authUUID, nil
}
