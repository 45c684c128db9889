package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gestorlabs/gestor/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and pt-BR message.
//   - Logs unexpected errors internally without leaking details to the
//     client.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// A missing capability carries its own label; it must be matched
	// before the generic forbidden case it also satisfies.
	var missing *domain.MissingCapabilityError
	if errors.As(err, &missing) {
		return http.StatusUnauthorized, "Você não tem permissão para acessar " + missing.Capability.Label() + "!"
	}

	// Known domain errors → deterministic codes and messages.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não cadastrado!"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusUnauthorized, "Usuário inativo!"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Senha incorreta!"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Usuário não autenticado!"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Token inválido!"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "Usuário já cadastrado!"
	case errors.Is(err, domain.ErrRoleProtected):
		return http.StatusForbidden, "O cargo padrão não pode ser alterado!"
	case errors.Is(err, domain.ErrRoleInUse):
		return http.StatusConflict, "Este cargo ainda está vinculado a usuários!"
	case errors.Is(err, domain.ErrRoleExists):
		return http.StatusConflict, "Cargo já cadastrado!"
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusNotFound, "Cargo não encontrado!"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Você não tem permissão para realizar esta ação!"
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "Cliente não encontrado!"
	case errors.Is(err, domain.ErrSupplierNotFound):
		return http.StatusNotFound, "Fornecedor não encontrado!"
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "Projeto não encontrado!"
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound, "Transação não encontrada!"
	case errors.Is(err, domain.ErrStatusNotFound):
		return http.StatusNotFound, "Status não encontrado!"
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "Tarefa não encontrada!"
	case errors.Is(err, domain.ErrStatusInUse), errors.Is(err, domain.ErrHasDependents):
		return http.StatusConflict, "Registro vinculado a outros cadastros!"
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict, "Registro já cadastrado!"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Requisição inválida!"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Erro interno do servidor!"
}
