package booking

import "github.com/wanderbook/travel-booking-backend/internal/catalog"

// defaultCommissionRate is the platform's cut of every partner booking.
const defaultCommissionRate = 0.10

// CommissionRate returns the commission rate for a category. All categories
// share the flat rate today; taking the category keeps a future per-category
// schedule a one-point change.
func CommissionRate(_ catalog.Category) float64 {
	return defaultCommissionRate
}

// SplitTotal divides a booking total into the partner payout and the platform
// commission. The two always sum exactly to the total: the commission is
// computed and the partner share is the remainder.
func SplitTotal(total float64, category catalog.Category) (partnerAmount, commissionAmount float64) {
	commissionAmount = total * CommissionRate(category)
	partnerAmount = total - commissionAmount
	return partnerAmount, commissionAmount
}
