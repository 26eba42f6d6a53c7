package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/fare"
	"github.com/wanderbook/travel-booking-backend/internal/pkg/request"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

// Resolve handles GET /services/:category/:id. Any accepted category spelling
// works here; the response always carries the canonical one.
func (h *Handler) Resolve(c *gin.Context) {
	category, ok := catalog.NormalizeCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown service category"})
		return
	}

	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	svc, err := h.service.Resolve(c.Request.Context(), category, uri.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve service"})
		return
	}

	c.JSON(http.StatusOK, NewServiceResponse(svc))
}

// Quote handles POST /quotes. It backs the live estimate the form shows while
// the user types, so an incomplete form yields {"available": false} rather
// than an error.
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	category, ok := catalog.NormalizeCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown service category"})
		return
	}

	svc, err := h.service.Resolve(c.Request.Context(), category, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve service"})
		return
	}

	quote := fare.Compute(svc, req.ToDraft(category))
	c.JSON(http.StatusOK, quote)
}
