package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wanderbook/travel-booking-backend/internal/auth"
	"github.com/wanderbook/travel-booking-backend/internal/booking"
	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/fare"
	"github.com/wanderbook/travel-booking-backend/internal/partner"
	"github.com/wanderbook/travel-booking-backend/internal/pkg/response"
	"github.com/wanderbook/travel-booking-backend/internal/user"
)

type Handler struct {
	service        booking.Service
	catalogService catalog.Service
	partnerService partner.Service
}

func NewHandler(
	service booking.Service,
	catalogService catalog.Service,
	partnerService partner.Service,
) *Handler {
	return &Handler{
		service:        service,
		catalogService: catalogService,
		partnerService: partnerService,
	}
}

// Create handles POST /bookings. The caller is authenticated by the time this
// runs; an unauthenticated submit goes through the reservation-draft stash and
// sign-in first, then lands here on resume. The service is re-resolved and the
// quote recomputed server-side, never trusted from the client.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	clientID := auth.GetUserID(c)
	if clientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	category, ok := catalog.NormalizeCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown service category"})
		return
	}

	ctx := c.Request.Context()

	svc, err := h.catalogService.Resolve(ctx, category, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve service"})
		return
	}

	d := req.ToDraft(category)
	quote := fare.Compute(svc, d)

	b, err := h.service.Create(ctx, booking.CreateRequest{
		ClientID: clientID,
		Service:  svc,
		Draft:    d,
		Quote:    quote,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// List handles GET /bookings. Clients see their own bookings, partners the
// ones attributed to them, admins everything.
func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		Category:      req.Category,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		Page:          req.Page,
		PageSize:      req.PageSize,
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
	}

	userID := auth.GetUserID(c)
	switch auth.GetUserRole(c) {
	case user.RoleAdmin:
		// No forced scope.
	case user.RolePartner:
		p, err := h.partnerService.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "no partner profile for this account"})
			return
		}
		filter.PartnerID = p.ID
	default:
		filter.ClientID = userID
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

// Get handles GET /bookings/:id.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !h.canAccess(c, b) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Cancel handles POST /bookings/:id/cancel, the client-initiated transition
// to (cancelled, refunded).
func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// ConfirmPayment handles POST /bookings/:id/confirm-payment, recording a
// successful capture reported by the external payment step. Admin only.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.ConfirmPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// MarkPartnerPaid handles POST /bookings/:id/partner-paid, recording partner
// settlement from the payout process. Admin only.
func (h *Handler) MarkPartnerPaid(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.MarkPartnerPaid(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// canAccess reports whether the current user may read the booking: the
// booking's client, an admin, or the attributed partner.
func (h *Handler) canAccess(c *gin.Context, b *booking.Booking) bool {
	userID := auth.GetUserID(c)
	role := auth.GetUserRole(c)

	if role == user.RoleAdmin || b.ClientID == userID {
		return true
	}
	if role == user.RolePartner && b.PartnerID != nil {
		p, err := h.partnerService.GetByUserID(c.Request.Context(), userID)
		if err == nil && p.ID == *b.PartnerID {
			return true
		}
	}
	return false
}
