package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.POST("/:id/cancel", h.Cancel)
	}

	// === Admin Routes ===
	group.POST("/:id/confirm-payment", adminMiddleware, h.ConfirmPayment)
	group.POST("/:id/partner-paid", adminMiddleware, h.MarkPartnerPaid)
}
