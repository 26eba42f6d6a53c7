package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wanderbook/travel-booking-backend/internal/auth"
	"github.com/wanderbook/travel-booking-backend/internal/booking"
	bookingHttp "github.com/wanderbook/travel-booking-backend/internal/booking/http"
	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	catalogHttp "github.com/wanderbook/travel-booking-backend/internal/catalog/http"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
	draftHttp "github.com/wanderbook/travel-booking-backend/internal/draft/http"
	"github.com/wanderbook/travel-booking-backend/internal/earnings"
	earningsHttp "github.com/wanderbook/travel-booking-backend/internal/earnings/http"
	"github.com/wanderbook/travel-booking-backend/internal/partner"
	"github.com/wanderbook/travel-booking-backend/internal/pkg/request"
	"github.com/wanderbook/travel-booking-backend/internal/postauth"
	"github.com/wanderbook/travel-booking-backend/internal/user"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService     user.Service
	PartnerService  partner.Service
	CatalogService  catalog.Service
	DraftStore      draft.Store
	PostAuthRouter  *postauth.Router
	BookingService  booking.Service
	EarningsService earnings.Service
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Recovery, Auth) and
// registering routes for the various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", request.SessionHeader}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireRole(user.RoleAdmin)
	partnerMiddleware := RequireRole(user.RolePartner)

	// Initialize HTTP handlers for each module (injecting service dependencies).
	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager, cfg.PostAuthRouter)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	draftHandler := draftHttp.NewHandler(cfg.DraftStore)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.CatalogService, cfg.PartnerService)
	earningsHandler := earningsHttp.NewHandler(cfg.EarningsService, cfg.PartnerService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		// Auth
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
		v1.GET("/me", authMiddleware, authHandler.Me)

		catalogHttp.RegisterRoutes(v1, catalogHandler)
		draftHttp.RegisterRoutes(v1, draftHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		earningsHttp.RegisterRoutes(v1, earningsHandler, authMiddleware, partnerMiddleware)
	}

	return r
}
