package draft

import (
	"errors"
	"time"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
)

var (
	ErrMissingEndDate = errors.New("end date is required for this category")
	ErrEndBeforeStart = errors.New("end date must be after start date")
)

// Contact holds the booking contact details collected on the form.
type Contact struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ReservationDraft is an in-progress, not-yet-persisted booking form. It holds
// just enough to re-resolve the service and resubmit after an authentication
// round trip.
type ReservationDraft struct {
	ServiceID  string           `json:"service_id"`
	Category   catalog.Category `json:"category"`
	StartDate  time.Time        `json:"start_date"`
	EndDate    *time.Time       `json:"end_date,omitempty"` // required for accommodation/vehicle, ignored for tour
	GuestCount int              `json:"guest_count"`
	AddOns     map[string]bool  `json:"add_ons,omitempty"`
	Contact    Contact          `json:"contact"`
	Notes      string           `json:"notes,omitempty"`
}

// ValidateDates checks the category-specific date rules: accommodation and
// vehicle drafts need an end date after the start date, tours ignore the end
// date entirely.
func (d *ReservationDraft) ValidateDates() error {
	if !d.Category.RequiresEndDate() {
		return nil
	}
	if d.EndDate == nil {
		return ErrMissingEndDate
	}
	if !d.EndDate.After(d.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}
