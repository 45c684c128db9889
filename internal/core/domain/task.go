package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is an actionable item, optionally tied to a project and an
// assignee.
type Task struct {
	UUID         uuid.UUID  `json:"uuid" gorm:"type:uuid;primaryKey"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description"`
	ProjectUUID  *uuid.UUID `json:"project_uuid,omitempty" gorm:"type:uuid;index"`
	AssigneeUUID *uuid.UUID `json:"assignee_uuid,omitempty" gorm:"type:uuid;index"`
	StatusUUID   uuid.UUID  `json:"status_uuid" gorm:"type:uuid;index;not null"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
