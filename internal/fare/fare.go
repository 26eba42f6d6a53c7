// Package fare computes deterministic price quotes for resolved services.
// Quotes are recomputed in full on every form change, so everything here is
// pure: the same service and draft always produce the same total.
package fare

import (
	"math"
	"time"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
)

// AddOnRates lists the fixed per-night surcharge for each known add-on.
// Add-ons only apply to accommodation; unknown names contribute nothing.
var AddOnRates = map[string]float64{
	"breakfast-included": 150,
	"airport-transfer":   80,
	"late-checkout":      100,
}

// Quote is the price breakdown for a draft against a resolved service.
// Available is false while the form lacks required dates; the UI recomputes on
// every keystroke, and an incomplete form is not an error.
type Quote struct {
	Available   bool    `json:"available"`
	Units       int     `json:"units"`      // nights, days or persons
	UnitLabel   string  `json:"unit_label"` // "night", "day" or "person"
	BaseAmount  float64 `json:"base_amount"`
	AddOnAmount float64 `json:"add_on_amount"`
	Total       float64 `json:"total"`
}

// Unavailable is the quote returned while required inputs are missing.
var Unavailable = Quote{}

// Compute quotes the draft against the service.
//
// Pricing by fare unit:
//   - per-night (accommodation): unit price x nights, guest count ignored;
//     enabled add-ons charge their fixed rate per night on top.
//   - per-day (vehicle): unit price x days, guest count ignored, no add-ons.
//   - per-person (tour): unit price x guest count, single departure date.
func Compute(svc *catalog.ResolvedService, d *draft.ReservationDraft) Quote {
	if svc == nil || d == nil || d.StartDate.IsZero() {
		return Unavailable
	}

	switch svc.FareUnit {
	case FarePerPerson:
		guests := d.GuestCount
		if guests < 1 {
			guests = 1
		}
		base := svc.UnitPrice * float64(guests)
		return finalize(guests, "person", base, 0)

	case FarePerDay:
		if d.EndDate == nil || !d.EndDate.After(d.StartDate) {
			return Unavailable
		}
		days := daySpan(d.StartDate, *d.EndDate)
		base := svc.UnitPrice * float64(days)
		return finalize(days, "day", base, 0)

	default: // per-night
		if d.EndDate == nil || !d.EndDate.After(d.StartDate) {
			return Unavailable
		}
		nights := daySpan(d.StartDate, *d.EndDate)
		base := svc.UnitPrice * float64(nights)

		var addOns float64
		if svc.Category.IsAccommodation() {
			for name, enabled := range d.AddOns {
				if !enabled {
					continue
				}
				addOns += AddOnRates[name] * float64(nights)
			}
		}
		return finalize(nights, "night", base, addOns)
	}
}

// Fare unit aliases so callers of this package do not need to import catalog
// just to switch on a quote.
const (
	FarePerNight  = catalog.FarePerNight
	FarePerDay    = catalog.FarePerDay
	FarePerPerson = catalog.FarePerPerson
)

// daySpan is the number of whole days covered by the range, rounding partial
// days up, never less than 1.
func daySpan(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

func finalize(units int, label string, base, addOns float64) Quote {
	if base < 0 {
		base = 0
	}
	if addOns < 0 {
		addOns = 0
	}
	return Quote{
		Available:   true,
		Units:       units,
		UnitLabel:   label,
		BaseAmount:  base,
		AddOnAmount: addOns,
		Total:       base + addOns,
	}
}
