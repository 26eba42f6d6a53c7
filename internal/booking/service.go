package booking

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
	"github.com/wanderbook/travel-booking-backend/internal/fare"
)

// CreateRequest carries everything the lifecycle manager needs to persist a
// booking: the authenticated client, the resolved service, the submitted form
// and the quote computed for it.
type CreateRequest struct {
	ClientID string
	Service  *catalog.ResolvedService
	Draft    *draft.ReservationDraft
	Quote    fare.Quote
}

// Service is the booking lifecycle manager.
type Service interface {
	// Create validates the draft and persists a new booking in state
	// (pending, pending). Validation runs in full before any insert is
	// attempted: a failed create never reaches the store, and a store failure
	// is propagated as-is without retry (creation is not idempotent; callers
	// retry by submitting a fresh draft).
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// Cancel is the client-initiated transition to (cancelled, refunded),
	// allowed while the booking has not completed.
	Cancel(ctx context.Context, id, clientID string) (*Booking, error)
	// ConfirmPayment records a successful external payment capture, moving the
	// booking to (confirmed, paid).
	ConfirmPayment(ctx context.Context, id string) (*Booking, error)
	// MarkPartnerPaid records partner settlement for a partner-sourced booking.
	MarkPartnerPaid(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new booking Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	d := req.Draft
	svc := req.Service

	// Category reaches us in whatever spelling the upstream form used; the
	// synonym table is authoritative, no inference.
	category, ok := catalog.NormalizeCategory(string(d.Category))
	if !ok {
		return nil, ErrUnknownCategory
	}

	if err := validateDates(category, d); err != nil {
		return nil, err
	}
	if d.GuestCount < 1 {
		return nil, ErrGuestCount
	}
	if err := validateContact(d.Contact); err != nil {
		return nil, err
	}
	if !req.Quote.Available {
		return nil, ErrQuoteUnavailable
	}

	b := &Booking{
		ClientID:      req.ClientID,
		ServiceID:     svc.ID,
		Category:      category,
		StartDate:     d.StartDate,
		GuestCount:    d.GuestCount,
		AddOns:        d.AddOns,
		Contact:       d.Contact,
		Notes:         d.Notes,
		TotalPrice:    req.Quote.Total,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
	}
	if category.RequiresEndDate() {
		b.EndDate = d.EndDate
	}

	// The commission split is derived once at creation so the financial
	// fields on the record stay stable even if the rate policy later changes.
	if svc.Source == catalog.SourcePartner {
		partnerRef := svc.PartnerRef
		b.PartnerID = &partnerRef
		b.PartnerAmount, b.CommissionAmount = SplitTotal(b.TotalPrice, category)
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	log.Info().
		Str("booking_id", b.ID).
		Str("client_id", b.ClientID).
		Str("category", string(b.Category)).
		Float64("total", b.TotalPrice).
		Bool("partner_sourced", b.PartnerID != nil).
		Msg("booking created")

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id, clientID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.ClientID != clientID {
		return nil, ErrPermissionDenied
	}
	if b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusRefunded {
		return nil, ErrNotCancellable
	}

	b.Status = StatusCancelled
	b.PaymentStatus = PaymentRefunded
	if err := s.repo.UpdateStatus(ctx, id, b.Status, b.PaymentStatus); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ConfirmPayment(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status == StatusCancelled || b.Status == StatusRefunded {
		return nil, ErrInvalidStatus
	}

	b.Status = StatusConfirmed
	b.PaymentStatus = PaymentPaid
	if err := s.repo.UpdateStatus(ctx, id, b.Status, b.PaymentStatus); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) MarkPartnerPaid(ctx context.Context, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.PartnerID == nil {
		return ErrInvalidStatus
	}
	// Settlement only makes sense once the client has actually paid.
	if b.PaymentStatus != PaymentPaid {
		return ErrPaymentPending
	}
	return s.repo.MarkPartnerPaid(ctx, id)
}

// validateDates applies the category rules: accommodation and vehicle bookings
// span a range, tours are keyed on the start date only.
func validateDates(category catalog.Category, d *draft.ReservationDraft) error {
	if d.StartDate.IsZero() {
		return ErrQuoteUnavailable
	}
	if !category.RequiresEndDate() {
		return nil
	}
	if d.EndDate == nil {
		return ErrMissingEndDate
	}
	if !d.EndDate.After(d.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

func validateContact(c draft.Contact) error {
	if strings.TrimSpace(c.FullName) == "" {
		return ErrMissingFullName
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrMissingPhone
	}
	return nil
}
