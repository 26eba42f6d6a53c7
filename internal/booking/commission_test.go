package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
)

func TestCommissionRateIsFlat(t *testing.T) {
	for _, c := range catalog.Categories {
		assert.Equal(t, 0.10, CommissionRate(c), string(c))
	}
}

func TestSplitTotal(t *testing.T) {
	partner, commission := SplitTotal(1000, catalog.CategoryVilla)
	assert.Equal(t, 900.0, partner)
	assert.Equal(t, 100.0, commission)

	partner, commission = SplitTotal(0, catalog.CategoryTour)
	assert.Zero(t, partner)
	assert.Zero(t, commission)

	// Partner share is derived as the remainder, so the split always sums
	// back to the total.
	for _, total := range []float64{1, 333, 1234.56, 99999} {
		partner, commission = SplitTotal(total, catalog.CategoryVehicle)
		assert.Equal(t, total, partner+commission, "total %v", total)
	}
}
