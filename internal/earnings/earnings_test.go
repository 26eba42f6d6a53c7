package earnings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderbook/travel-booking-backend/internal/booking"
	"github.com/wanderbook/travel-booking-backend/internal/catalog"
)

func partnerBooking(partnerID string, total float64, payment booking.PaymentStatus, settled bool) *booking.Booking {
	return &booking.Booking{
		PartnerID:     &partnerID,
		Category:      catalog.CategoryHotel,
		TotalPrice:    total,
		PaymentStatus: payment,
		PartnerPaid:   settled,
	}
}

func TestSummarizeTotals(t *testing.T) {
	bookings := []*booking.Booking{
		partnerBooking("p1", 1000, booking.PaymentPaid, true),
		partnerBooking("p1", 500, booking.PaymentPaid, false),
		partnerBooking("p1", 300, booking.PaymentPending, false),
	}

	s := Summarize("p1", bookings)

	assert.Equal(t, 1800.0, s.TotalRevenue)
	assert.Equal(t, 180.0, s.TotalCommission, "commission is 10% of revenue")
	assert.Equal(t, 1620.0, s.TotalEarnings)
	assert.Equal(t, s.TotalRevenue-s.TotalCommission, s.TotalEarnings)
}

func TestSummarizePayoutBuckets(t *testing.T) {
	bookings := []*booking.Booking{
		// Settled: client paid, partner paid out.
		partnerBooking("p1", 1000, booking.PaymentPaid, true),
		// Owed: client paid, payout outstanding.
		partnerBooking("p1", 500, booking.PaymentPaid, false),
		// Client has not paid: counts toward neither bucket.
		partnerBooking("p1", 300, booking.PaymentPending, false),
		// Settlement flag without client payment still does not count.
		partnerBooking("p1", 200, booking.PaymentRefunded, true),
	}

	s := Summarize("p1", bookings)

	assert.Equal(t, 900.0, s.PaidToDate)
	assert.Equal(t, 450.0, s.PendingPayment)
}

func TestSummarizeSkipsOtherPartners(t *testing.T) {
	bookings := []*booking.Booking{
		partnerBooking("p1", 1000, booking.PaymentPaid, true),
		partnerBooking("p2", 5000, booking.PaymentPaid, true),
		{Category: catalog.CategoryTour, TotalPrice: 700, PaymentStatus: booking.PaymentPaid}, // platform booking, no partner
	}

	s := Summarize("p1", bookings)

	assert.Equal(t, 1000.0, s.TotalRevenue)
	assert.Equal(t, 900.0, s.PaidToDate)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize("p1", nil))
	assert.Equal(t, Summary{}, Summarize("p1", []*booking.Booking{}))
}

// fakeBookingRepository serves a fixed attributed set through the
// aggregation read path.
type fakeBookingRepository struct {
	booking.Repository

	byPartner map[string][]*booking.Booking
}

func (f *fakeBookingRepository) ListAllByPartner(_ context.Context, partnerID string) ([]*booking.Booking, error) {
	return f.byPartner[partnerID], nil
}

func TestForPartnerSeesEveryBooking(t *testing.T) {
	// Well past any page size a list endpoint would use: the aggregation read
	// must never truncate.
	const n = 25000
	all := make([]*booking.Booking, n)
	for i := range all {
		all[i] = partnerBooking("p1", 100, booking.PaymentPaid, false)
	}

	repo := &fakeBookingRepository{byPartner: map[string][]*booking.Booking{"p1": all}}
	svc := NewService(repo)

	s, err := svc.ForPartner(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, float64(n*100), s.TotalRevenue)
	assert.Equal(t, float64(n)*90, s.PendingPayment)
}
