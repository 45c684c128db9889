package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a unit of work delivered for a client.
type Project struct {
	UUID        uuid.UUID  `json:"uuid" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	ClientUUID  uuid.UUID  `json:"client_uuid" gorm:"type:uuid;index;not null"`
	StatusUUID  uuid.UUID  `json:"status_uuid" gorm:"type:uuid;index;not null"`
	BudgetCents int64      `json:"budget_cents"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
