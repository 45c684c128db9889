package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type clientRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Document string `json:"document" validate:"required,brdoc"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"    validate:"omitempty,len=2"`
	ZipCode  string `json:"zip_code"`
}

func (r clientRequest) toDomain(id uuid.UUID) *domain.Client {
	return &domain.Client{
		UUID:     id,
		Name:     r.Name,
		Document: r.Document,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
		ZipCode:  r.ZipCode,
	}
}

func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	client, err := h.clients.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	client, err := h.clients.Create(c.Request().Context(), req.toDomain(uuid.Nil))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	client, err := h.clients.Update(c.Request().Context(), req.toDomain(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	if err := h.clients.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Cliente excluído com sucesso!"})
}
