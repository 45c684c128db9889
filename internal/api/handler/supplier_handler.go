package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type SupplierHandler struct {
	suppliers ports.SupplierService
}

func NewSupplierHandler(suppliers ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

type supplierRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Document string `json:"document" validate:"required,brdoc"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"    validate:"omitempty,len=2"`
	ZipCode  string `json:"zip_code"`
}

func (r supplierRequest) toDomain(id uuid.UUID) *domain.Supplier {
	return &domain.Supplier{
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

func (h *SupplierHandler) List(c echo.Context) error {
	suppliers, err := h.suppliers.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	supplier, err := h.suppliers.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) Create(c echo.Context) error {
	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	supplier, err := h.suppliers.Create(c.Request().Context(), req.toDomain(uuid.Nil))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, supplier)
}

func (h *SupplierHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	supplier, err := h.suppliers.Update(c.Request().Context(), req.toDomain(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	if err := h.suppliers.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Fornecedor excluído com sucesso!"})
}
