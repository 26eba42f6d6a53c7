// Package earnings derives partner-facing money totals from the bookings
// attributed to a partner.
package earnings

import (
	"context"

	"github.com/wanderbook/travel-booking-backend/internal/booking"
)

// Summary is the partner payout view over a set of attributed bookings.
//
// PendingPayment and PaidToDate are gated twice: a booking enters either
// bucket only once the client has paid, and moves from pending to paid-to-date
// only when the separate partner settlement flag is set. The two gates stay
// independently inspectable; a client-paid booking with an unsettled partner
// is a normal intermediate state, not an anomaly.
type Summary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
	TotalEarnings   float64 `json:"total_earnings"`
	PendingPayment  float64 `json:"pending_payment"`
	PaidToDate      float64 `json:"paid_to_date"`
}

// Summarize folds the bookings attributed to the partner into a Summary.
// Pure: bookings for other partners (or with no partner) are skipped, so the
// caller may pass an unfiltered set.
func Summarize(partnerID string, bookings []*booking.Booking) Summary {
	var s Summary

	for _, b := range bookings {
		if b.PartnerID == nil || *b.PartnerID != partnerID {
			continue
		}

		commission := b.TotalPrice * booking.CommissionRate(b.Category)
		partnerShare := b.TotalPrice - commission

		s.TotalRevenue += b.TotalPrice
		s.TotalCommission += commission
		s.TotalEarnings += partnerShare

		// Unpaid-by-client bookings count toward neither payout bucket.
		if b.PaymentStatus != booking.PaymentPaid {
			continue
		}
		if b.PartnerPaid {
			s.PaidToDate += partnerShare
		} else {
			s.PendingPayment += partnerShare
		}
	}

	return s
}

// Service recomputes partner totals from stored bookings.
type Service interface {
	ForPartner(ctx context.Context, partnerID string) (Summary, error)
}

type service struct {
	bookings booking.Repository
}

// NewService creates a new earnings Service.
func NewService(bookings booking.Repository) Service {
	return &service{bookings: bookings}
}

func (s *service) ForPartner(ctx context.Context, partnerID string) (Summary, error) {
	// Totals are recomputed from the full attributed set on every call. The
	// read is deliberately unpaginated: a paged read would drop bookings past
	// the page limit and undercount every total.
	all, err := s.bookings.ListAllByPartner(ctx, partnerID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(partnerID, all), nil
}
