package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
	"github.com/wanderbook/travel-booking-backend/internal/pkg/request"
)

type Handler struct {
	store draft.Store
}

func NewHandler(store draft.Store) *Handler {
	return &Handler{store: store}
}

// Stash handles POST /reservation-draft. Called when an unauthenticated user
// submits the booking form: the draft is held in its slot, the client
// redirects to sign-in, and the post-auth router consumes it on return. The
// draft is stored as submitted; full validation happens at booking creation.
func (h *Handler) Stash(c *gin.Context) {
	sessionID := c.GetHeader(request.SessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + request.SessionHeader + " header"})
		return
	}

	var req StashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	category, ok := catalog.NormalizeCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown service category"})
		return
	}

	if err := h.store.Stash(c.Request.Context(), sessionID, req.ToDraft(category)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save reservation draft"})
		return
	}

	c.Status(http.StatusNoContent)
}
