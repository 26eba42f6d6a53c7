package draft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
)

func sampleDraft() *ReservationDraft {
	end := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	return &ReservationDraft{
		ServiceID:  "9f7c1a2e-0b6d-4f8a-9c3e-1d2b3a4c5d6e",
		Category:   catalog.CategoryHotel,
		StartDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    &end,
		GuestCount: 2,
		AddOns:     map[string]bool{"breakfast-included": true},
		Contact: Contact{
			FullName: "Nadia Berrada",
			Email:    "nadia@example.com",
			Phone:    "+212600000000",
		},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	d := sampleDraft()
	require.NoError(t, store.Stash(ctx, "sess-1", d))

	got, err := store.Pop(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, d, got, "pop must return exactly what was stashed")
}

func TestMemoryStorePopIsSingleUse(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Stash(ctx, "sess-1", sampleDraft()))

	first, err := store.Pop(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := store.Pop(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, second, "the slot must be empty after the first pop")
}

func TestMemoryStoreEmptySlot(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Pop(context.Background(), "never-stashed")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreStashOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := sampleDraft()
	require.NoError(t, store.Stash(ctx, "sess-1", first))

	second := sampleDraft()
	second.ServiceID = "other-service"
	second.GuestCount = 4
	require.NoError(t, store.Stash(ctx, "sess-1", second))

	got, err := store.Pop(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "other-service", got.ServiceID)
	assert.Equal(t, 4, got.GuestCount)
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Stash(ctx, "sess-a", sampleDraft()))

	got, err := store.Pop(ctx, "sess-b")
	require.NoError(t, err)
	assert.Nil(t, got, "popping one session must not touch another")

	got, err = store.Pop(ctx, "sess-a")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestValidateDates(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("accommodation needs an end date", func(t *testing.T) {
		d := &ReservationDraft{Category: catalog.CategoryVilla, StartDate: start}
		assert.ErrorIs(t, d.ValidateDates(), ErrMissingEndDate)
	})

	t.Run("end must be after start", func(t *testing.T) {
		for _, end := range []time.Time{start, start.Add(-24 * time.Hour)} {
			end := end
			d := &ReservationDraft{Category: catalog.CategoryVehicle, StartDate: start, EndDate: &end}
			assert.ErrorIs(t, d.ValidateDates(), ErrEndBeforeStart)
		}
	})

	t.Run("valid range passes", func(t *testing.T) {
		end := start.Add(72 * time.Hour)
		d := &ReservationDraft{Category: catalog.CategoryHotel, StartDate: start, EndDate: &end}
		assert.NoError(t, d.ValidateDates())
	})

	t.Run("tour ignores the end date", func(t *testing.T) {
		d := &ReservationDraft{Category: catalog.CategoryTour, StartDate: start}
		assert.NoError(t, d.ValidateDates())

		before := start.Add(-24 * time.Hour)
		d.EndDate = &before
		assert.NoError(t, d.ValidateDates(), "a stale end date must not fail a tour draft")
	})
}
