package partner

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("partner not found")
)

// Partner represents an onboarded third-party provider whose catalog entries
// can be booked through the platform. The partner id is the commission
// beneficiary referenced by partner-sourced bookings.
type Partner struct {
	ID          string
	UserID      string // account the partner signs in with
	CompanyName string
	Phone       *string
	CreatedAt   time.Time
	IsActive    bool
}
