package http

import (
	"time"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
)

// StashRequest is the booking form as submitted by an unauthenticated user,
// externalized just before the redirect to sign-in.
type StashRequest struct {
	Category   string          `json:"category" binding:"required"`
	ServiceID  string          `json:"service_id" binding:"required,uuid"`
	StartDate  time.Time       `json:"start_date" binding:"required"`
	EndDate    *time.Time      `json:"end_date"`
	GuestCount int             `json:"guest_count" binding:"required,min=1"`
	AddOns     map[string]bool `json:"add_ons"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Notes      string          `json:"notes"`
}

// ToDraft converts the request to the domain draft.
func (r *StashRequest) ToDraft(category catalog.Category) *draft.ReservationDraft {
	return &draft.ReservationDraft{
		ServiceID:  r.ServiceID,
		Category:   category,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		GuestCount: r.GuestCount,
		AddOns:     r.AddOns,
		Contact: draft.Contact{
			FullName: r.FullName,
			Email:    r.Email,
			Phone:    r.Phone,
		},
		Notes: r.Notes,
	}
}
