package domain

import (
	"time"

	"github.com/google/uuid"
)

// Capability is one of the four independent permissions a role may grant.
type Capability string

const (
	CapabilityAdmin     Capability = "admin"
	CapabilityProject   Capability = "project"
	CapabilityPersonal  Capability = "personal"
	CapabilityFinancial Capability = "financial"
)

// Capabilities lists every capability in its fixed evaluation order.
// Multi-capability checks iterate this slice so the first missing
// capability reported is deterministic.
var Capabilities = []Capability{
	CapabilityAdmin,
	CapabilityProject,
	CapabilityPersonal,
	CapabilityFinancial,
}

// Valid reports whether c names a known capability.
func (c Capability) Valid() bool {
	switch c {
	case CapabilityAdmin, CapabilityProject, CapabilityPersonal, CapabilityFinancial:
		return true
	}
	return false
}

// Label returns the user-facing pt-BR description of the data a
// capability protects. Denial messages embed this label.
func (c Capability) Label() string {
	switch c {
	case CapabilityAdmin:
		return "configurações do sistema"
	case CapabilityProject:
		return "dados dos projetos"
	case CapabilityPersonal:
		return "dados pessoais"
	case CapabilityFinancial:
		return "dados financeiros"
	}
	return string(c)
}

// DefaultRoleOrdinal is the reserved ordinal of the system's fallback
// role. The role holding it can never be updated or deleted.
const DefaultRoleOrdinal = 0

// Role carries a name and the four capability flags. The domain calls
// roles "auths", which is why users reference them through AuthUUID.
type Role struct {
	UUID      uuid.UUID `json:"uuid" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Ordinal   int       `json:"ordinal" gorm:"uniqueIndex;not null"`
	Admin     bool      `json:"admin"`
	Project   bool      `json:"project"`
	Personal  bool      `json:"personal"`
	Financial bool      `json:"financial"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Grants reports whether the role holds the given capability. Unknown
// capabilities are never granted.
func (r *Role) Grants(c Capability) bool {
	switch c {
	case CapabilityAdmin:
		return r.Admin
	case CapabilityProject:
		return r.Project
	case CapabilityPersonal:
		return r.Personal
	case CapabilityFinancial:
		return r.Financial
	}
	return false
}

// IsDefault reports whether this is the protected fallback role.
func (r *Role) IsDefault() bool {
	return r.Ordinal == DefaultRoleOrdinal
}
