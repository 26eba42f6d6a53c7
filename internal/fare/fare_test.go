package fare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func hotelService(pricePerNight float64) *catalog.ResolvedService {
	return &catalog.ResolvedService{
		ID:        "svc-hotel",
		Category:  catalog.CategoryHotel,
		UnitPrice: pricePerNight,
		FareUnit:  catalog.FarePerNight,
		Source:    catalog.SourcePlatform,
	}
}

func TestComputeAccommodation(t *testing.T) {
	t.Run("nights times unit price, guests ignored", func(t *testing.T) {
		d := &draft.ReservationDraft{
			Category:   catalog.CategoryHotel,
			StartDate:  date(2025, 6, 1),
			EndDate:    datePtr(2025, 6, 4),
			GuestCount: 2,
		}

		q := Compute(hotelService(500), d)

		require.True(t, q.Available)
		assert.Equal(t, 3, q.Units)
		assert.Equal(t, "night", q.UnitLabel)
		assert.Equal(t, 1500.0, q.BaseAmount)
		assert.Equal(t, 0.0, q.AddOnAmount)
		assert.Equal(t, 1500.0, q.Total)

		// Guest count must not change an accommodation total.
		d.GuestCount = 5
		assert.Equal(t, 1500.0, Compute(hotelService(500), d).Total)
	})

	t.Run("breakfast add-on charges per night", func(t *testing.T) {
		d := &draft.ReservationDraft{
			Category:   catalog.CategoryHotel,
			StartDate:  date(2025, 6, 1),
			EndDate:    datePtr(2025, 6, 4),
			GuestCount: 2,
			AddOns:     map[string]bool{"breakfast-included": true},
		}

		q := Compute(hotelService(500), d)

		require.True(t, q.Available)
		assert.Equal(t, 450.0, q.AddOnAmount) // 150 x 3 nights
		assert.Equal(t, 1950.0, q.Total)
	})

	t.Run("disabled and unknown add-ons contribute nothing", func(t *testing.T) {
		d := &draft.ReservationDraft{
			Category:  catalog.CategoryHotel,
			StartDate: date(2025, 6, 1),
			EndDate:   datePtr(2025, 6, 4),
			AddOns: map[string]bool{
				"breakfast-included": false,
				"helicopter-pad":     true,
			},
		}

		assert.Equal(t, 1500.0, Compute(hotelService(500), d).Total)
	})

	t.Run("partial night rounds up, minimum one night", func(t *testing.T) {
		end := date(2025, 6, 1).Add(6 * time.Hour)
		d := &draft.ReservationDraft{
			Category:  catalog.CategoryVilla,
			StartDate: date(2025, 6, 1),
			EndDate:   &end,
		}

		q := Compute(hotelService(500), d)
		require.True(t, q.Available)
		assert.Equal(t, 1, q.Units)
	})
}

func TestComputeVehicle(t *testing.T) {
	svc := &catalog.ResolvedService{
		ID:        "svc-car",
		Category:  catalog.CategoryVehicle,
		UnitPrice: 300,
		FareUnit:  catalog.FarePerDay,
		Source:    catalog.SourcePlatform,
	}

	d := &draft.ReservationDraft{
		Category:   catalog.CategoryVehicle,
		StartDate:  date(2025, 6, 1),
		EndDate:    datePtr(2025, 6, 6),
		GuestCount: 4,
	}

	q := Compute(svc, d)

	require.True(t, q.Available)
	assert.Equal(t, 5, q.Units)
	assert.Equal(t, "day", q.UnitLabel)
	assert.Equal(t, 1500.0, q.Total, "guest count must be ignored for vehicles")

	t.Run("add-ons do not apply to vehicles", func(t *testing.T) {
		d2 := *d
		d2.AddOns = map[string]bool{"breakfast-included": true}
		assert.Equal(t, 1500.0, Compute(svc, &d2).Total)
	})
}

func TestComputeTour(t *testing.T) {
	svc := &catalog.ResolvedService{
		ID:         "svc-tour",
		Category:   catalog.CategoryTour,
		UnitPrice:  800,
		FareUnit:   catalog.FarePerPerson,
		Source:     catalog.SourcePartner,
		PartnerRef: "partner-1",
	}

	d := &draft.ReservationDraft{
		Category:   catalog.CategoryTour,
		StartDate:  date(2025, 7, 10),
		GuestCount: 3,
	}

	q := Compute(svc, d)

	require.True(t, q.Available)
	assert.Equal(t, 3, q.Units)
	assert.Equal(t, "person", q.UnitLabel)
	assert.Equal(t, 2400.0, q.Total)

	t.Run("zero guests quoted as one person", func(t *testing.T) {
		d2 := *d
		d2.GuestCount = 0
		assert.Equal(t, 800.0, Compute(svc, &d2).Total)
	})

	t.Run("end date is irrelevant for tours", func(t *testing.T) {
		d2 := *d
		d2.EndDate = datePtr(2025, 7, 9) // before start, still fine
		assert.Equal(t, 2400.0, Compute(svc, &d2).Total)
	})
}

func TestComputeUnavailable(t *testing.T) {
	svc := hotelService(500)

	t.Run("missing start date", func(t *testing.T) {
		q := Compute(svc, &draft.ReservationDraft{Category: catalog.CategoryHotel})
		assert.False(t, q.Available)
		assert.Equal(t, 0.0, q.Total)
	})

	t.Run("missing end date for accommodation", func(t *testing.T) {
		q := Compute(svc, &draft.ReservationDraft{
			Category:  catalog.CategoryHotel,
			StartDate: date(2025, 6, 1),
		})
		assert.False(t, q.Available)
	})

	t.Run("end date not after start date", func(t *testing.T) {
		q := Compute(svc, &draft.ReservationDraft{
			Category:  catalog.CategoryHotel,
			StartDate: date(2025, 6, 4),
			EndDate:   datePtr(2025, 6, 1),
		})
		assert.False(t, q.Available)
	})

	t.Run("nil inputs", func(t *testing.T) {
		assert.False(t, Compute(nil, nil).Available)
	})
}

func TestComputeIsPure(t *testing.T) {
	svc := hotelService(500)
	d := &draft.ReservationDraft{
		Category:   catalog.CategoryHotel,
		StartDate:  date(2025, 6, 1),
		EndDate:    datePtr(2025, 6, 4),
		GuestCount: 2,
		AddOns:     map[string]bool{"breakfast-included": true, "late-checkout": true},
	}

	first := Compute(svc, d)
	for range 10 {
		assert.Equal(t, first, Compute(svc, d))
	}
}
