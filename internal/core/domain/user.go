package domain

import (
	"time"

	"github.com/google/uuid"
)

// User models an authenticated actor. Login accepts exactly one of
// email, CPF or username as the identifying field.
type User struct {
	UUID         uuid.UUID `json:"uuid" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	CPF          string    `json:"cpf" gorm:"uniqueIndex;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	AuthUUID     uuid.UUID `json:"auth_uuid" gorm:"type:uuid;index;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginField tags which identifying field a login attempt carries.
// The decision is made once at the request boundary, never inferred
// from nullable-field precedence further down.
type LoginField int

const (
	ByEmail LoginField = iota
	ByCPF
	ByUsername
)

// Identifier pairs a login field tag with its value.
type Identifier struct {
	Field LoginField
	Value string
}
