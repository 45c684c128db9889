package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind is the closed set of financial movement types.
type TransactionKind string

const (
	KindBill    TransactionKind = "bill"
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
	KindLoan    TransactionKind = "loan"
	KindRefund  TransactionKind = "refund"
)

// Valid reports whether k names a known transaction kind.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindBill, KindExpense, KindIncome, KindLoan, KindRefund:
		return true
	}
	return false
}

// Transaction is a single financial movement. Amounts are stored in
// centavos to avoid floating-point drift.
type Transaction struct {
	UUID         uuid.UUID       `json:"uuid" gorm:"type:uuid;primaryKey"`
	Kind         TransactionKind `json:"kind" gorm:"index;not null"`
	Description  string          `json:"description" gorm:"not null"`
	AmountCents  int64           `json:"amount_cents" gorm:"not null"`
	DueAt        time.Time       `json:"due_at"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
	ProjectUUID  *uuid.UUID      `json:"project_uuid,omitempty" gorm:"type:uuid;index"`
	ClientUUID   *uuid.UUID      `json:"client_uuid,omitempty" gorm:"type:uuid;index"`
	SupplierUUID *uuid.UUID      `json:"supplier_uuid,omitempty" gorm:"type:uuid;index"`
	StatusUUID   uuid.UUID       `json:"status_uuid" gorm:"type:uuid;index;not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
