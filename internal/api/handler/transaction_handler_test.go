package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type stubTransactionService struct {
	getFn      func(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	listFn     func(ctx context.Context, filter ports.TransactionFilter) ([]domain.Transaction, error)
	createFn   func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	updateFn   func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	markPaidFn func(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (s *stubTransactionService) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *stubTransactionService) List(ctx context.Context, filter ports.TransactionFilter) ([]domain.Transaction, error) {
	return s.listFn(ctx, filter)
}

func (s *stubTransactionService) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	return s.createFn(ctx, tx)
}

func (s *stubTransactionService) Update(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	return s.updateFn(ctx, tx)
}

func (s *stubTransactionService) MarkPaid(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.markPaidFn(ctx, id)
}

func (s *stubTransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func TestTransactionHandler_Get_RendersAmountAndDates(t *testing.T) {
	e := echo.New()
	id := uuid.New()
	due := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	stub := &stubTransactionService{
		getFn: func(ctx context.Context, got uuid.UUID) (*domain.Transaction, error) {
			if got != id {
				t.Fatalf("unexpected id: %s", got)
			}
			return &domain.Transaction{
				UUID: id, Kind: domain.KindIncome, Description: "entrada",
				AmountCents: 123456, DueAt: due, PaidAt: &paid,
				StatusUUID: uuid.New(),
			}, nil
		},
	}
	h := NewTransactionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/transactions/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["amount"] != "R$ 1.234,56" {
		t.Fatalf("unexpected amount: %v", resp["amount"])
	}
	if resp["due"] != "05/09/2026" {
		t.Fatalf("unexpected due date: %v", resp["due"])
	}
	if resp["paid"] != "01/09/2026 14:30" {
		t.Fatalf("unexpected paid timestamp: %v", resp["paid"])
	}
	// The raw fields stay alongside the rendered ones.
	if resp["amount_cents"] != float64(123456) {
		t.Fatalf("unexpected amount_cents: %v", resp["amount_cents"])
	}
}

func TestTransactionHandler_List_RendersEveryRow(t *testing.T) {
	e := echo.New()
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	stub := &stubTransactionService{
		listFn: func(ctx context.Context, filter ports.TransactionFilter) ([]domain.Transaction, error) {
			return []domain.Transaction{
				{UUID: uuid.New(), Kind: domain.KindExpense, Description: "aluguel", AmountCents: 5000, DueAt: due, StatusUUID: uuid.New()},
			}, nil
		},
	}
	h := NewTransactionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 row, got %d", len(resp))
	}
	if resp[0]["amount"] != "R$ 50,00" {
		t.Fatalf("unexpected amount: %v", resp[0]["amount"])
	}
	if resp[0]["due"] != "10/01/2026" {
		t.Fatalf("unexpected due date: %v", resp[0]["due"])
	}
	if _, ok := resp[0]["paid"]; ok {
		t.Fatal("unpaid row must omit the rendered paid field")
	}
}
