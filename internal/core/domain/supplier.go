package domain

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a vendor the business buys from.
type Supplier struct {
	UUID      uuid.UUID `json:"uuid" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Document  string    `json:"document" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
