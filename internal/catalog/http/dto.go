package http

import (
	"time"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
)

// ServiceResponse is the API shape of a resolved service.
type ServiceResponse struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	UnitPrice   float64  `json:"unit_price"`
	FareUnit    string   `json:"fare_unit"`
	Source      string   `json:"source"`
	PartnerID   string   `json:"partner_id,omitempty"`
}

// NewServiceResponse converts a catalog.ResolvedService to its API shape.
func NewServiceResponse(s *catalog.ResolvedService) ServiceResponse {
	images := s.Images
	if images == nil {
		images = []string{}
	}
	return ServiceResponse{
		ID:          s.ID,
		Category:    string(s.Category),
		Title:       s.Title,
		Description: s.Description,
		Images:      images,
		UnitPrice:   s.UnitPrice,
		FareUnit:    string(s.FareUnit),
		Source:      string(s.Source),
		PartnerID:   s.PartnerRef,
	}
}

// QuoteRequest asks for a live price estimate for a partially filled form.
type QuoteRequest struct {
	Category   string          `json:"category" binding:"required"`
	ServiceID  string          `json:"service_id" binding:"required,uuid"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    *time.Time      `json:"end_date"`
	GuestCount int             `json:"guest_count"`
	AddOns     map[string]bool `json:"add_ons"`
}

// ToDraft builds the draft the calculator quotes against. Contact fields are
// irrelevant to pricing and stay empty.
func (r *QuoteRequest) ToDraft(category catalog.Category) *draft.ReservationDraft {
	return &draft.ReservationDraft{
		ServiceID:  r.ServiceID,
		Category:   category,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		GuestCount: r.GuestCount,
		AddOns:     r.AddOns,
	}
}
