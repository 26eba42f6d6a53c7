package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderbook/travel-booking-backend/internal/auth"
	"github.com/wanderbook/travel-booking-backend/internal/earnings"
	"github.com/wanderbook/travel-booking-backend/internal/partner"
)

type Handler struct {
	service        earnings.Service
	partnerService partner.Service
}

func NewHandler(service earnings.Service, partnerService partner.Service) *Handler {
	return &Handler{
		service:        service,
		partnerService: partnerService,
	}
}

// Summary handles GET /partner/earnings for the authenticated partner.
func (h *Handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.partnerService.GetByUserID(ctx, auth.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "no partner profile for this account"})
		return
	}

	summary, err := h.service.ForPartner(ctx, p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute earnings"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
