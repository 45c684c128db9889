package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is a shared lookup value referenced by projects, transactions
// and tasks (e.g. "pendente", "pago", "concluído").
type Status struct {
	UUID      uuid.UUID `json:"uuid" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Ordinal   int       `json:"ordinal" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
