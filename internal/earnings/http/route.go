package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, partnerMiddleware gin.HandlerFunc) {
	g.GET("/partner/earnings", authMiddleware, partnerMiddleware, h.Summary)
}
