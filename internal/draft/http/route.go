package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the draft route. Stashing happens precisely when
// the user is not authenticated yet, so the route takes no auth middleware.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/reservation-draft", h.Stash)
}
