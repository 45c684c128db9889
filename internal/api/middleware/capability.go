package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/api/metrics"
	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

// Capability gates a route on a single capability of the caller's role.
// It must run after Session, which puts the decoded role identity in
// the context.
func Capability(authz ports.AuthzService, cap domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authUUID, ok := c.Get(CtxAuthUUID).(uuid.UUID)
			if !ok {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Usuário não autenticado!"})
			}

			if !authz.Authorized(c.Request().Context(), cap, authUUID) {
				metrics.AuthzDeniedTotal.WithLabelValues(string(cap)).Inc()
				return c.JSON(http.StatusForbidden, messageResponse{
					Message: "Você não tem permissão para acessar " + cap.Label() + "!",
				})
			}

			return next(c)
		}
	}
}
