package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]Category{
		"hotel":                   CategoryHotel,
		"hotels":                  CategoryHotel,
		"accommodation-hotel":     CategoryHotel,
		"apartment":               CategoryApartment,
		"accommodation-apartment": CategoryApartment,
		"villa":                   CategoryVilla,
		"villas":                  CategoryVilla,
		"car":                     CategoryVehicle,
		"cars":                    CategoryVehicle,
		"vehicle":                 CategoryVehicle,
		"tour":                    CategoryTour,
		"circuit":                 CategoryTour,
		"circuits":                CategoryTour,
	}
	for raw, want := range cases {
		got, ok := NormalizeCategory(raw)
		require.True(t, ok, "expected %q to normalize", raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestNormalizeCategoryUnknown(t *testing.T) {
	for _, raw := range []string{"", "boat", "Hotel", "HOTEL", "hotel "} {
		_, ok := NormalizeCategory(raw)
		assert.False(t, ok, "expected %q to be rejected", raw)
	}
}

func TestCategoryFareUnit(t *testing.T) {
	assert.Equal(t, FarePerNight, CategoryHotel.FareUnit())
	assert.Equal(t, FarePerNight, CategoryApartment.FareUnit())
	assert.Equal(t, FarePerNight, CategoryVilla.FareUnit())
	assert.Equal(t, FarePerDay, CategoryVehicle.FareUnit())
	assert.Equal(t, FarePerPerson, CategoryTour.FareUnit())
}

func TestCategoryDateRules(t *testing.T) {
	for _, c := range Categories {
		if c == CategoryTour {
			assert.False(t, c.RequiresEndDate())
		} else {
			assert.True(t, c.RequiresEndDate(), string(c))
		}
	}
	assert.True(t, CategoryHotel.IsAccommodation())
	assert.True(t, CategoryVilla.IsAccommodation())
	assert.False(t, CategoryVehicle.IsAccommodation())
	assert.False(t, CategoryTour.IsAccommodation())
}
