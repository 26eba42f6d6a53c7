package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrInvalidRole        = errors.New("invalid role")
)

// Role values match the database enum. The role is a coarse account axis:
// clients make bookings, partners receive commission-split payouts, admins
// manage the platform catalog.
const (
	RoleAdmin   = "admin"
	RolePartner = "partner"
	RoleClient  = "client"
)

// ValidRoles lists the roles accepted at registration.
var ValidRoles = []string{RoleAdmin, RolePartner, RoleClient}

// User represents an account in the system.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	Role         string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
}
