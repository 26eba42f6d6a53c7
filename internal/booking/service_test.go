package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
	"github.com/wanderbook/travel-booking-backend/internal/fare"
)

// fakeRepository keeps bookings in a map and records mutations.
type fakeRepository struct {
	bookings map[string]*Booking
	created  int
	statuses map[string][2]string // id -> {status, payment_status}
	paid     map[string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		bookings: make(map[string]*Booking),
		statuses: make(map[string][2]string),
		paid:     make(map[string]bool),
	}
}

func (f *fakeRepository) Create(_ context.Context, b *Booking) error {
	f.created++
	b.ID = "bk-1"
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepository) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	out := make([]*Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepository) ListAllByPartner(_ context.Context, partnerID string) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if b.PartnerID != nil && *b.PartnerID == partnerID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id string, status Status, paymentStatus PaymentStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.PaymentStatus = paymentStatus
	f.statuses[id] = [2]string{string(status), string(paymentStatus)}
	return nil
}

func (f *fakeRepository) MarkPartnerPaid(_ context.Context, id string) error {
	b, ok := f.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.PartnerPaid = true
	f.paid[id] = true
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		ClientID: "client-1",
		Service: &catalog.ResolvedService{
			ID:        "svc-1",
			Category:  catalog.CategoryHotel,
			Title:     "Atlas Grand",
			UnitPrice: 500,
			FareUnit:  catalog.FarePerNight,
			Source:    catalog.SourcePlatform,
		},
		Draft: &draft.ReservationDraft{
			ServiceID:  "svc-1",
			Category:   catalog.CategoryHotel,
			StartDate:  date(2026, 9, 10),
			EndDate:    datePtr(2026, 9, 13),
			GuestCount: 2,
			Contact:    draft.Contact{FullName: "Nadia Berrada", Email: "nadia@example.com", Phone: "+212600000000"},
		},
		Quote: fare.Quote{Available: true, Units: 3, BaseAmount: 1500, Total: 1500},
	}
}

func TestCreatePlatformBooking(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, PaymentPending, b.PaymentStatus)
	assert.Equal(t, 1500.0, b.TotalPrice)
	assert.Nil(t, b.PartnerID, "platform bookings carry no partner attribution")
	assert.Zero(t, b.PartnerAmount)
	assert.Zero(t, b.CommissionAmount)
	require.NotNil(t, b.EndDate)
	assert.Equal(t, 1, repo.created)
}

func TestCreatePartnerBookingSplitsCommission(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	req := validCreateRequest()
	req.Service.Source = catalog.SourcePartner
	req.Service.PartnerRef = "partner-7"
	req.Quote = fare.Quote{Available: true, Units: 2, BaseAmount: 1000, Total: 1000}

	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, b.PartnerID)
	assert.Equal(t, "partner-7", *b.PartnerID)
	assert.Equal(t, 900.0, b.PartnerAmount)
	assert.Equal(t, 100.0, b.CommissionAmount)
	assert.Equal(t, b.TotalPrice, b.PartnerAmount+b.CommissionAmount)
}

func TestCreateNormalizesCategorySynonyms(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	req := validCreateRequest()
	req.Draft.Category = "hotels"

	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryHotel, b.Category)
}

func TestCreateTourIgnoresEndDate(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	req := validCreateRequest()
	req.Draft.Category = catalog.CategoryTour
	req.Draft.EndDate = nil
	req.Service.Category = catalog.CategoryTour

	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, b.EndDate)

	// A stale end date from a reused form is dropped, not persisted.
	req = validCreateRequest()
	req.Draft.Category = catalog.CategoryTour
	req.Draft.EndDate = datePtr(2026, 9, 8)
	b, err = svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, b.EndDate)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	mutate := func(fn func(*CreateRequest)) CreateRequest {
		req := validCreateRequest()
		fn(&req)
		return req
	}

	cases := []struct {
		name string
		req  CreateRequest
		want error
	}{
		{"unknown category", mutate(func(r *CreateRequest) { r.Draft.Category = "spaceship" }), ErrUnknownCategory},
		{"missing end date", mutate(func(r *CreateRequest) { r.Draft.EndDate = nil }), ErrMissingEndDate},
		{"end equals start", mutate(func(r *CreateRequest) { r.Draft.EndDate = datePtr(2026, 9, 10) }), ErrEndBeforeStart},
		{"end before start", mutate(func(r *CreateRequest) { r.Draft.EndDate = datePtr(2026, 9, 8) }), ErrEndBeforeStart},
		{"zero guests", mutate(func(r *CreateRequest) { r.Draft.GuestCount = 0 }), ErrGuestCount},
		{"negative guests", mutate(func(r *CreateRequest) { r.Draft.GuestCount = -2 }), ErrGuestCount},
		{"missing full name", mutate(func(r *CreateRequest) { r.Draft.Contact.FullName = "  " }), ErrMissingFullName},
		{"missing email", mutate(func(r *CreateRequest) { r.Draft.Contact.Email = "" }), ErrMissingEmail},
		{"missing phone", mutate(func(r *CreateRequest) { r.Draft.Contact.Phone = "" }), ErrMissingPhone},
		{"quote unavailable", mutate(func(r *CreateRequest) { r.Quote = fare.Unavailable }), ErrQuoteUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *fakeRepository, string) {
		t.Helper()
		repo := newFakeRepository()
		svc := NewService(repo)
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		return svc, repo, b.ID
	}

	t.Run("owner cancels a pending booking", func(t *testing.T) {
		svc, repo, id := setup(t)

		b, err := svc.Cancel(ctx, id, "client-1")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, b.Status)
		assert.Equal(t, PaymentRefunded, b.PaymentStatus)
		assert.Equal(t, [2]string{"cancelled", "refunded"}, repo.statuses[id])
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, _, id := setup(t)

		_, err := svc.Cancel(ctx, id, "someone-else")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("terminal states cannot be cancelled", func(t *testing.T) {
		for _, st := range []Status{StatusCompleted, StatusCancelled, StatusRefunded} {
			svc, repo, id := setup(t)
			repo.bookings[id].Status = st

			_, err := svc.Cancel(ctx, id, "client-1")
			assert.ErrorIs(t, err, ErrNotCancellable, string(st))
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Cancel(ctx, "missing", "client-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	b, err := svc.ConfirmPayment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, PaymentPaid, b.PaymentStatus)

	// A cancelled booking cannot take a payment capture.
	repo.bookings[created.ID].Status = StatusCancelled
	_, err = svc.ConfirmPayment(ctx, created.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestMarkPartnerPaid(t *testing.T) {
	ctx := context.Background()

	partnerReq := func() CreateRequest {
		req := validCreateRequest()
		req.Service.Source = catalog.SourcePartner
		req.Service.PartnerRef = "partner-7"
		return req
	}

	t.Run("requires partner attribution", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.ErrorIs(t, svc.MarkPartnerPaid(ctx, b.ID), ErrInvalidStatus)
	})

	t.Run("requires client payment first", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)
		b, err := svc.Create(ctx, partnerReq())
		require.NoError(t, err)

		assert.ErrorIs(t, svc.MarkPartnerPaid(ctx, b.ID), ErrPaymentPending)
		assert.False(t, repo.paid[b.ID])
	})

	t.Run("settles after payment capture", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)
		b, err := svc.Create(ctx, partnerReq())
		require.NoError(t, err)

		_, err = svc.ConfirmPayment(ctx, b.ID)
		require.NoError(t, err)

		require.NoError(t, svc.MarkPartnerPaid(ctx, b.ID))
		assert.True(t, repo.paid[b.ID])
	})
}
