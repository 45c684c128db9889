package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type TaskHandler struct {
	tasks ports.TaskService
}

func NewTaskHandler(tasks ports.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type taskRequest struct {
	Title        string     `json:"title"       validate:"required,min=2"`
	Description  string     `json:"description"`
	ProjectUUID  *string    `json:"project_uuid,omitempty"  validate:"omitempty,uuid"`
	AssigneeUUID *string    `json:"assignee_uuid,omitempty" validate:"omitempty,uuid"`
	StatusUUID   string     `json:"status_uuid" validate:"required,uuid"`
	DueAt        *time.Time `json:"due_at,omitempty"`
}

func (r taskRequest) toDomain(id uuid.UUID) *domain.Task {
	task := &domain.Task{
		UUID:        id,
		Title:       r.Title,
		Description: r.Description,
		StatusUUID:  uuid.MustParse(r.StatusUUID),
		DueAt:       r.DueAt,
	}
	if r.ProjectUUID != nil {
		v := uuid.MustParse(*r.ProjectUUID)
		task.ProjectUUID = &v
	}
	if r.AssigneeUUID != nil {
		v := uuid.MustParse(*r.AssigneeUUID)
		task.AssigneeUUID = &v
	}
	return task
}

func (h *TaskHandler) List(c echo.Context) error {
	var projectUUID *uuid.UUID
	if raw := c.QueryParam("project"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
		}
		projectUUID = &id
	}

	tasks, err := h.tasks.List(c.Request().Context(), projectUUID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	task, err := h.tasks.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Create(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	task, err := h.tasks.Create(c.Request().Context(), req.toDomain(uuid.Nil))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	task, err := h.tasks.Update(c.Request().Context(), req.toDomain(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	if err := h.tasks.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Tarefa excluída com sucesso!"})
}
