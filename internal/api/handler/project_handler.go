package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
	"github.com/gestorlabs/gestor/pkg/format"
)

type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type projectRequest struct {
	Name        string     `json:"name"        validate:"required,min=2"`
	Description string     `json:"description"`
	ClientUUID  string     `json:"client_uuid" validate:"required,uuid"`
	StatusUUID  string     `json:"status_uuid" validate:"required,uuid"`
	BudgetCents int64      `json:"budget_cents" validate:"gte=0"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

func (r projectRequest) toDomain(id uuid.UUID) *domain.Project {
	return &domain.Project{
		UUID:        id,
		Name:        r.Name,
		Description: r.Description,
		ClientUUID:  uuid.MustParse(r.ClientUUID),
		StatusUUID:  uuid.MustParse(r.StatusUUID),
		BudgetCents: r.BudgetCents,
		StartedAt:   r.StartedAt,
		Deadline:    r.Deadline,
	}
}

// projectResponse is the wire shape: the entity plus the budget and
// deadline rendered for display.
type projectResponse struct {
	domain.Project
	Budget  string `json:"budget"`
	DueDate string `json:"due_date,omitempty"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	resp := projectResponse{Project: *p, Budget: format.BRL(p.BudgetCents)}
	if p.Deadline != nil {
		resp.DueDate = format.Date(*p.Deadline)
	}
	return resp
}

func toProjectResponses(projects []domain.Project) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	return out
}

func (h *ProjectHandler) List(c echo.Context) error {
	var filter ports.ProjectFilter
	if raw := c.QueryParam("client"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
		}
		filter.ClientUUID = &id
	}
	if raw := c.QueryParam("status"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
		}
		filter.StatusUUID = &id
	}

	projects, err := h.projects.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponses(projects))
}

func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	project, err := h.projects.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	project, err := h.projects.Create(c.Request().Context(), req.toDomain(uuid.Nil))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	project, err := h.projects.Update(c.Request().Context(), req.toDomain(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	if err := h.projects.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Projeto excluído com sucesso!"})
}
