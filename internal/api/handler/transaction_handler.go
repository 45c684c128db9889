package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
	"github.com/gestorlabs/gestor/pkg/format"
)

type TransactionHandler struct {
	transactions ports.TransactionService
}

func NewTransactionHandler(transactions ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type transactionRequest struct {
	Kind         string     `json:"kind"         validate:"required,oneof=bill expense income loan refund"`
	Description  string     `json:"description"  validate:"required"`
	AmountCents  int64      `json:"amount_cents" validate:"required,gt=0"`
	DueAt        time.Time  `json:"due_at"       validate:"required"`
	ProjectUUID  *string    `json:"project_uuid,omitempty"  validate:"omitempty,uuid"`
	ClientUUID   *string    `json:"client_uuid,omitempty"   validate:"omitempty,uuid"`
	SupplierUUID *string    `json:"supplier_uuid,omitempty" validate:"omitempty,uuid"`
	StatusUUID   string     `json:"status_uuid"  validate:"required,uuid"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}

func (r transactionRequest) toDomain(id uuid.UUID) *domain.Transaction {
	tx := &domain.Transaction{
		UUID:        id,
		Kind:        domain.TransactionKind(r.Kind),
		Description: r.Description,
		AmountCents: r.AmountCents,
		DueAt:       r.DueAt,
		PaidAt:      r.PaidAt,
		StatusUUID:  uuid.MustParse(r.StatusUUID),
	}
	if r.ProjectUUID != nil {
		v := uuid.MustParse(*r.ProjectUUID)
		tx.ProjectUUID = &v
	}
	if r.ClientUUID != nil {
		v := uuid.MustParse(*r.ClientUUID)
		tx.ClientUUID = &v
	}
	if r.SupplierUUID != nil {
		v := uuid.MustParse(*r.SupplierUUID)
		tx.SupplierUUID = &v
	}
	return tx
}

// transactionResponse is the wire shape: the entity plus the amount and
// dates rendered the way the product displays them.
type transactionResponse struct {
	domain.Transaction
	Amount string `json:"amount"`
	Due    string `json:"due"`
	Paid   string `json:"paid,omitempty"`
}

func toTransactionResponse(tx *domain.Transaction) transactionResponse {
	resp := transactionResponse{
		Transaction: *tx,
		Amount:      format.BRL(tx.AmountCents),
		Due:         format.Date(tx.DueAt),
	}
	if tx.PaidAt != nil {
		resp.Paid = format.DateTime(*tx.PaidAt)
	}
	return resp
}

func toTransactionResponses(txs []domain.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, toTransactionResponse(&txs[i]))
	}
	return out
}

// List selects transactions, optionally filtered by kind, project and
// paid state (?kind=bill&project=<uuid>&paid=true).
func (h *TransactionHandler) List(c echo.Context) error {
	var filter ports.TransactionFilter
	if raw := c.QueryParam("kind"); raw != "" {
		kind := domain.TransactionKind(raw)
		if !kind.Valid() {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Tipo de transação inválido!"})
		}
		filter.Kind = kind
	}
	if raw := c.QueryParam("project"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
		}
		filter.ProjectUUID = &id
	}
	if raw := c.QueryParam("paid"); raw != "" {
		paid, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
		}
		filter.Paid = &paid
	}

	transactions, err := h.transactions.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionResponses(transactions))
}

func (h *TransactionHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	tx, err := h.transactions.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionResponse(tx))
}

func (h *TransactionHandler) Create(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	tx, err := h.transactions.Create(c.Request().Context(), req.toDomain(uuid.Nil))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTransactionResponse(tx))
}

func (h *TransactionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Requisição inválida!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	tx, err := h.transactions.Update(c.Request().Context(), req.toDomain(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionResponse(tx))
}

// Pay stamps the transaction as settled now.
func (h *TransactionHandler) Pay(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	tx, err := h.transactions.MarkPaid(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionResponse(tx))
}

func (h *TransactionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Identificador inválido!"})
	}

	if err := h.transactions.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Transação excluída com sucesso!"})
}
