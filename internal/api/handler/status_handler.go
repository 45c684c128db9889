package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type StatusHandler struct {
	statuses ports.StatusService
}

func NewStatusHandler(statuses ports.StatusService) *StatusHandler {
	return &StatusHandler{statuses: statuses}
}

type statusRequest struct {
	Name    string `json:"name"    validate:"required,min=2"`
	Ordinal int    `json:"ordinal" validate:"gte=0"`
}

func (h *StatusHandler) List(c echo.Context) error {
	statuses, err := h.statuses.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statuses)
}

func (h *StatusHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	status, err := h.statuses.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

func (h *StatusHandler) Create(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	status, err := h.statuses.Create(c.Request().Context(), &domain.Status{Name: req.Name, Ordinal: req.Ordinal})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, status)
}

func (h *StatusHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	status, err := h.statuses.Update(c.Request().Context(), &domain.Status{UUID: id, Name: req.Name, Ordinal: req.Ordinal})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

func (h *StatusHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	if err := h.statuses.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Status excluído com sucesso!"})
}
