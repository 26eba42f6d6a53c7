package http

import (
	"time"

	"github.com/wanderbook/travel-booking-backend/internal/booking"
	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
	"github.com/wanderbook/travel-booking-backend/internal/pkg/request"
)

// CreateBookingRequest is the booking form at final submission, from an
// authenticated client.
type CreateBookingRequest struct {
	Category   string          `json:"category" binding:"required"`
	ServiceID  string          `json:"service_id" binding:"required,uuid"`
	StartDate  time.Time       `json:"start_date" binding:"required"`
	EndDate    *time.Time      `json:"end_date"`
	GuestCount int             `json:"guest_count" binding:"required,min=1"`
	AddOns     map[string]bool `json:"add_ons"`
	FullName   string          `json:"full_name" binding:"required"`
	Email      string          `json:"email" binding:"required,email"`
	Phone      string          `json:"phone" binding:"required"`
	Notes      string          `json:"notes"`
}

// ToDraft converts the request to the domain draft.
func (r *CreateBookingRequest) ToDraft(category catalog.Category) *draft.ReservationDraft {
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

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	Category      string `form:"category"`
	Status        string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed refunded"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=pending paid failed refunded"`
	SortBy        string `form:"sort_by" binding:"omitempty,oneof=start_date created_at status total_price"`
}

// BookingResponse is the API shape of a booking.
type BookingResponse struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"client_id"`
	ServiceID        string          `json:"service_id"`
	Category         string          `json:"category"`
	PartnerID        *string         `json:"partner_id,omitempty"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          *time.Time      `json:"end_date,omitempty"`
	GuestCount       int             `json:"guest_count"`
	AddOns           map[string]bool `json:"add_ons,omitempty"`
	TotalPrice       float64         `json:"total_price"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"payment_status"`
	PartnerAmount    float64         `json:"partner_amount,omitempty"`
	CommissionAmount float64         `json:"commission_amount,omitempty"`
	PartnerPaid      bool            `json:"partner_paid"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NewBookingResponse converts a domain booking to its API shape.
func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		ClientID:         b.ClientID,
		ServiceID:        b.ServiceID,
		Category:         string(b.Category),
		PartnerID:        b.PartnerID,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		GuestCount:       b.GuestCount,
		AddOns:           b.AddOns,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		PartnerAmount:    b.PartnerAmount,
		CommissionAmount: b.CommissionAmount,
		PartnerPaid:      b.PartnerPaid,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
