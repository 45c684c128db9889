package domain

import "errors"

// Authentication / session errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user inactive")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("missing session token")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrUserExists         = errors.New("user already exists")
)

// Authorization / role errors.
var (
	ErrForbidden     = errors.New("access forbidden")
	ErrRoleNotFound  = errors.New("role not found")
	ErrRoleExists    = errors.New("role already exists")
	ErrRoleProtected = errors.New("default role cannot be modified")
	ErrRoleInUse     = errors.New("role is referenced by users")
)

// CRUD entity errors.
var (
	ErrClientNotFound      = errors.New("client not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrStatusNotFound      = errors.New("status not found")
	ErrStatusInUse         = errors.New("status is referenced by other records")
	ErrTaskNotFound        = errors.New("task not found")
	ErrHasDependents       = errors.New("record is referenced by other records")
	ErrDuplicate           = errors.New("record already exists")
	ErrInvalidInput        = errors.New("invalid input")
)

// MissingCapabilityError reports the first capability an authorization
// check found absent from the caller's role.
type MissingCapabilityError struct {
	Capability Capability
}

func (e *MissingCapabilityError) Error() string {
	return "missing capability: " + string(e.Capability)
}

func (e *MissingCapabilityError) Is(target error) bool {
	return target == ErrForbidden
}
