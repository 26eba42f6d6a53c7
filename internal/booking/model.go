package booking

import (
	"net/http"
	"time"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
	"github.com/wanderbook/travel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrUnknownCategory  = apperror.New(http.StatusBadRequest, "unknown service category")
	ErrEndBeforeStart   = apperror.New(http.StatusBadRequest, "end date must be after start date")
	ErrMissingEndDate   = apperror.New(http.StatusBadRequest, "end date is required for this category")
	ErrGuestCount       = apperror.New(http.StatusBadRequest, "guest count must be at least 1")
	ErrMissingFullName  = apperror.New(http.StatusBadRequest, "contact full name is required")
	ErrMissingEmail     = apperror.New(http.StatusBadRequest, "contact email is required")
	ErrMissingPhone     = apperror.New(http.StatusBadRequest, "contact phone is required")
	ErrQuoteUnavailable = apperror.New(http.StatusBadRequest, "quote unavailable for the given dates")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrNotCancellable   = apperror.New(http.StatusConflict, "booking can no longer be cancelled")
	ErrPaymentPending   = apperror.New(http.StatusConflict, "booking cannot complete while payment is pending")
)

// Status is the booking lifecycle axis. It evolves independently from
// PaymentStatus, with one invariant: a booking cannot be completed while its
// payment is still pending.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusRefunded  Status = "refunded"
)

// PaymentStatus is the client payment axis.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ValidStatuses and ValidPaymentStatuses list the accepted values for status
// updates.
var (
	ValidStatuses        = []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRefunded}
	ValidPaymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded}
)

// Booking is the durable record of a confirmed reservation intent.
//
// PartnerID is set only for partner-sourced services; PartnerAmount and
// CommissionAmount are derived at creation and only meaningful then, with
// PartnerAmount + CommissionAmount == TotalPrice. PartnerPaid is the separate
// settlement flag flipped once the partner payout clears, independent from the
// client's PaymentStatus.
type Booking struct {
	ID               string
	ClientID         string
	ServiceID        string
	Category         catalog.Category
	PartnerID        *string
	StartDate        time.Time
	EndDate          *time.Time
	GuestCount       int
	AddOns           map[string]bool
	Contact          draft.Contact
	Notes            string
	TotalPrice       float64
	Status           Status
	PaymentStatus    PaymentStatus
	PartnerAmount    float64
	CommissionAmount float64
	PartnerPaid      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ClientID      string
	PartnerID     string
	Category      string
	Status        string
	PaymentStatus string
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}
