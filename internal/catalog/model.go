package catalog

import "errors"

var (
	// ErrNotFound means the service id is absent from both the platform and the
	// partner catalog. Terminal for the caller.
	ErrNotFound = errors.New("service not found in any catalog")

	ErrUnknownCategory = errors.New("unknown service category")
)

// Category is the canonical service category. Every upstream spelling is
// normalized to one of these five before it reaches storage.
type Category string

const (
	CategoryHotel     Category = "accommodation-hotel"
	CategoryApartment Category = "accommodation-apartment"
	CategoryVilla     Category = "accommodation-villa"
	CategoryVehicle   Category = "vehicle"
	CategoryTour      Category = "tour"
)

// Categories lists all canonical categories.
var Categories = []Category{
	CategoryHotel, CategoryApartment, CategoryVilla, CategoryVehicle, CategoryTour,
}

// IsAccommodation reports whether the category is one of the lodging types.
// Accommodation is priced per night and is the only category with add-ons.
func (c Category) IsAccommodation() bool {
	switch c {
	case CategoryHotel, CategoryApartment, CategoryVilla:
		return true
	}
	return false
}

// RequiresEndDate reports whether a booking in this category needs a date
// range. Tours are single-day departures keyed on the start date only.
func (c Category) RequiresEndDate() bool {
	return c != CategoryTour
}

// FareUnit is the billing granularity of a service.
type FareUnit string

const (
	FarePerNight  FareUnit = "per-night"
	FarePerDay    FareUnit = "per-day"
	FarePerPerson FareUnit = "per-person"
)

// FareUnit returns the billing granularity for the category.
func (c Category) FareUnit() FareUnit {
	switch c {
	case CategoryVehicle:
		return FarePerDay
	case CategoryTour:
		return FarePerPerson
	default:
		return FarePerNight
	}
}

// Source identifies which catalog a resolved service came from.
type Source string

const (
	SourcePlatform Source = "platform"
	SourcePartner  Source = "partner"
)

// ResolvedService is the canonical view of a bookable item regardless of
// origin. It is a read-only projection recomputed on every resolution call and
// never persisted; the resolver does not own either underlying catalog.
//
// Invariant: PartnerRef is set iff Source == SourcePartner.
type ResolvedService struct {
	ID          string
	Category    Category
	Title       string
	Description string
	Images      []string // ordered, first is cover
	UnitPrice   float64  // currency-agnostic, interpreted via FareUnit
	FareUnit    FareUnit
	Source      Source
	PartnerRef  string // commission beneficiary, partner source only
}

// categorySynonyms maps every accepted upstream spelling to its canonical
// category. The table is authoritative: category normalization is a lookup,
// never inference.
var categorySynonyms = map[string]Category{
	"accommodation-hotel":     CategoryHotel,
	"hotel":                   CategoryHotel,
	"hotels":                  CategoryHotel,
	"accommodation-apartment": CategoryApartment,
	"apartment":               CategoryApartment,
	"apartments":              CategoryApartment,
	"accommodation-villa":     CategoryVilla,
	"villa":                   CategoryVilla,
	"villas":                  CategoryVilla,
	"vehicle":                 CategoryVehicle,
	"vehicles":                CategoryVehicle,
	"car":                     CategoryVehicle,
	"cars":                    CategoryVehicle,
	"tour":                    CategoryTour,
	"tours":                   CategoryTour,
	"circuit":                 CategoryTour,
	"circuits":                CategoryTour,
}

// NormalizeCategory resolves any accepted category spelling to its canonical
// form. Returns false for vocabulary it does not know.
func NormalizeCategory(raw string) (Category, bool) {
	c, ok := categorySynonyms[raw]
	return c, ok
}

// platformTables maps a canonical category to its platform-catalog table.
// Each table has its own column vocabulary; normalization happens in the
// repository scan and the names never leak past this package.
var platformTables = map[Category]string{
	CategoryHotel:     "public.hotels",
	CategoryApartment: "public.apartments",
	CategoryVilla:     "public.villas",
	CategoryVehicle:   "public.vehicles",
	CategoryTour:      "public.tours",
}

// partnerProductTypes maps a canonical category to the product-type tag used
// by the shared partner catalog. The partner vocabulary predates the platform
// one and differs for vehicles and tours.
var partnerProductTypes = map[Category]string{
	CategoryHotel:     "hotel",
	CategoryApartment: "apartment",
	CategoryVilla:     "villa",
	CategoryVehicle:   "car",
	CategoryTour:      "circuit",
}
