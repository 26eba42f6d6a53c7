// Package postauth decides where a user lands right after authenticating.
// Three independent resume mechanisms are checked before role dispatch: the
// reservation draft slot, a legacy inline navigation-state handoff, and a
// payment-step resume flag. They are deliberately kept as separate, explicitly
// ordered checks; merging them risks silently dropping an in-flight reservation.
package postauth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/wanderbook/travel-booking-backend/internal/draft"
	"github.com/wanderbook/travel-booking-backend/internal/user"
)

// Frontend landing paths. Kept server-side so the routing priority lives in
// one place instead of being re-derived by every client.
const (
	PathAdminLanding   = "/admin/dashboard"
	PathPartnerLanding = "/partner/dashboard"
	PathClientLanding  = "/my-bookings"
	PathPublicHome     = "/"
	PathPayment        = "/checkout/payment"
)

// BookingFormPath rebuilds the booking-form destination for a draft.
func BookingFormPath(category, serviceID string) string {
	return fmt.Sprintf("/book/%s/%s", category, serviceID)
}

// AuthResult is what the authentication service reports after a successful
// sign-in or sign-up.
type AuthResult struct {
	UserID string
	Role   string
}

// NavigationState carries the transient flags a client may attach to an
// authentication request. Reservation holds the inline payload for the two
// legacy handoff paths that never went through the draft slot.
type NavigationState struct {
	FromReservation bool            `json:"from_reservation"`
	ResumePayment   bool            `json:"resume_payment"`
	ReturnTo        string          `json:"return_to,omitempty"`
	Reservation     json.RawMessage `json:"reservation,omitempty"`
}

// Destination tells the client where to navigate and reattaches whatever
// reservation data was recovered.
type Destination struct {
	Path        string                  `json:"path"`
	Draft       *draft.ReservationDraft `json:"draft,omitempty"`
	Reservation json.RawMessage         `json:"reservation,omitempty"`
}

// Router computes post-authentication destinations.
type Router struct {
	drafts draft.Store
}

// NewRouter creates a post-auth Router over the given draft store.
func NewRouter(drafts draft.Store) *Router {
	return &Router{drafts: drafts}
}

// RouteAfterAuth returns the destination for a freshly authenticated user.
//
// Priority order, first match wins (the ordering is load-bearing):
//  1. A stashed reservation draft resumes the booking form, whatever the
//     role. Booking intent outranks role-based landing, admins included.
//  2. An inline "came from reservation" handoff returns to the originating
//     page with its data reattached.
//  3. A payment-resume flag with reservation data goes straight to the
//     payment step.
//  4. Role dispatch: admin, partner and client each have a landing page;
//     anything unrecognized falls back to the public home.
//
// Steps 1 and 2 consume their transient state, so navigating back and
// re-authenticating cannot replay the same resume.
func (r *Router) RouteAfterAuth(ctx context.Context, sessionID string, res AuthResult, nav NavigationState) (Destination, error) {
	if sessionID != "" {
		d, err := r.drafts.Pop(ctx, sessionID)
		if err != nil {
			return Destination{}, fmt.Errorf("pop reservation draft: %w", err)
		}
		if d != nil {
			log.Info().
				Str("user_id", res.UserID).
				Str("service_id", d.ServiceID).
				Msg("resuming stashed reservation after auth")
			return Destination{
				Path:  BookingFormPath(string(d.Category), d.ServiceID),
				Draft: d,
			}, nil
		}
	}

	if nav.FromReservation && len(nav.Reservation) > 0 {
		path := nav.ReturnTo
		if path == "" {
			path = PathPublicHome
		}
		return Destination{
			Path:        path,
			Reservation: nav.Reservation,
		}, nil
	}

	if nav.ResumePayment && len(nav.Reservation) > 0 {
		return Destination{
			Path:        PathPayment,
			Reservation: nav.Reservation,
		}, nil
	}

	switch res.Role {
	case user.RoleAdmin:
		return Destination{Path: PathAdminLanding}, nil
	case user.RolePartner:
		return Destination{Path: PathPartnerLanding}, nil
	case user.RoleClient:
		return Destination{Path: PathClientLanding}, nil
	default:
		return Destination{Path: PathPublicHome}, nil
	}
}
