package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/api/metrics"
	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

// RoleHandler handles the role ("auth") CRUD endpoints.
type RoleHandler struct {
	roles ports.RoleService
}

func NewRoleHandler(roles ports.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

type roleRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Admin     bool   `json:"admin"`
	Project   bool   `json:"project"`
	Personal  bool   `json:"personal"`
	Financial bool   `json:"financial"`
}

// Get selects roles. The path id is a uuid, "all" for every role, or
// "this" for the caller's own role. Name and capability query filters
// narrow "all" listings.
//
// @Summary      Select roles
// @Tags         auths
// @Produce      json
// @Param        id    path   string  true   "role uuid, \"all\" or \"this\""
// @Param        name  query  string  false  "filter by role name"
// @Success      200  {array}   domain.Role
// @Failure      404  {object}  messageResponse
// @Router       /auths/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	_, authUUID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	switch id := c.Param("id"); id {
	case "all":
		filter := ports.RoleFilter{Name: c.QueryParam("name")}
		for _, cap := range domain.Capabilities {
			if c.QueryParam(string(cap)) == "true" {
				filter.Capabilities = append(filter.Capabilities, cap)
			}
		}
		roles, err := h.roles.List(c.Request().Context(), filter)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, roles)

	case "this":
		role, err := h.roles.Get(c.Request().Context(), authUUID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, role)

	default:
		target, err := uuid.Parse(id)
		if err != nil {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
		}
		role, err := h.roles.Get(c.Request().Context(), target)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, role)
	}
}

// Create adds a role. The caller's role must grant admin.
//
// @Summary      Create a role
// @Tags         auths
// @Accept       json
// @Produce      json
// @Param        body  body      roleRequest  true  "Role fields"
// @Success      201   {object}  domain.Role
// @Failure      401   {object}  messageResponse
// @Router       /auths [post]
func (h *RoleHandler) Create(c echo.Context) error {
	_, authUUID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	role, err := h.roles.Create(c.Request().Context(), authUUID, ports.CreateRoleInput{
		Name:      req.Name,
		Admin:     req.Admin,
		Project:   req.Project,
		Personal:  req.Personal,
		Financial: req.Financial,
	})
	if err != nil {
		return h.roleError(c, err)
	}

	return c.JSON(http.StatusCreated, role)
}

// Update rewrites a role's name and flags. The default role is
// immutable regardless of the caller's capabilities.
//
// @Summary      Update a role
// @Tags         auths
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "role uuid"
// @Param        body  body      roleRequest  true  "Role fields"
// @Success      200   {object}  domain.Role
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /auths/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	_, authUUID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	target, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	role, err := h.roles.Update(c.Request().Context(), authUUID, ports.UpdateRoleInput{
		UUID:      target,
		Name:      req.Name,
		Admin:     req.Admin,
		Project:   req.Project,
		Personal:  req.Personal,
		Financial: req.Financial,
	})
	if err != nil {
		return h.roleError(c, err)
	}

	return c.JSON(http.StatusOK, role)
}

// Delete removes a role that is not the default and has no users
// attached.
//
// @Summary      Delete a role
// @Tags         auths
// @Produce      json
// @Param        id  path  string  true  "role uuid"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      409  {object}  messageResponse
// @Router       /auths/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	_, authUUID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	target, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	if err := h.roles.Delete(c.Request().Context(), authUUID, target); err != nil {
		return h.roleError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Cargo excluído com sucesso!"})
}

// roleError maps role mutation failures locally: missing capability is
// reported as 401 naming the protected data, matching the product's
// original contract.
func (h *RoleHandler) roleError(c echo.Context, err error) error {
	var missing *domain.MissingCapabilityError
	if errors.As(err, &missing) {
		metrics.AuthzDeniedTotal.WithLabelValues(string(missing.Capability)).Inc()
		return c.JSON(http.StatusUnauthorized, messageResponse{
			Message: "Você não tem permissão para acessar " + missing.Capability.Label() + "!",
		})
	}
	return err
}
