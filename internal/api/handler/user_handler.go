package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/ports"
)

// UserHandler handles user provisioning endpoints. All routes sit
// behind the session gate and the admin capability gate.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	CPF      string `json:"cpf"      validate:"required,cpf"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,senha"`
	AuthUUID string `json:"auth_uuid" validate:"required,uuid"`
}

type updateUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	CPF      string `json:"cpf"      validate:"required,cpf"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"omitempty,senha"`
	Active   bool   `json:"active"`
	AuthUUID string `json:"auth_uuid" validate:"required,uuid"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		CPF:      req.CPF,
		Username: req.Username,
		Password: req.Password,
		AuthUUID: uuid.MustParse(req.AuthUUID),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, err := h.users.Update(c.Request().Context(), ports.UpdateUserInput{
		UUID:     id,
		Name:     req.Name,
		Email:    req.Email,
		CPF:      req.CPF,
		Username: req.Username,
		Password: req.Password,
		Active:   req.Active,
		AuthUUID: uuid.MustParse(req.AuthUUID),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete deactivates the user instead of removing the row.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	if err := h.users.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Usuário desativado com sucesso!"})
}
