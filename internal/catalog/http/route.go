package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public catalog routes. Resolution and quoting
// happen while the user is still browsing, so neither requires auth.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/services/:category/:id", h.Resolve)
	g.POST("/quotes", h.Quote)
}
