package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/wanderbook/travel-booking-backend/internal/api"
	"github.com/wanderbook/travel-booking-backend/internal/auth"
	"github.com/wanderbook/travel-booking-backend/internal/booking"
	"github.com/wanderbook/travel-booking-backend/internal/catalog"
	"github.com/wanderbook/travel-booking-backend/internal/draft"
	"github.com/wanderbook/travel-booking-backend/internal/earnings"
	"github.com/wanderbook/travel-booking-backend/internal/partner"
	"github.com/wanderbook/travel-booking-backend/internal/postauth"
	"github.com/wanderbook/travel-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	RedisClient  *redis.Client
	DraftTTL     time.Duration
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	DraftStore draft.Store
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Partner module
	partnerRepo := partner.NewPgxRepository(cfg.DBPool)
	partnerService := partner.NewService(partnerRepo)

	// Catalog module
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogService := catalog.NewService(catalogRepo)

	// Reservation draft slot + post-auth routing
	draftStore := draft.NewRedisStore(cfg.RedisClient, cfg.DraftTTL)
	postAuthRouter := postauth.NewRouter(draftStore)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo)

	// Earnings module
	earningsService := earnings.NewService(bookingRepo)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		PartnerService:  partnerService,
		CatalogService:  catalogService,
		DraftStore:      draftStore,
		PostAuthRouter:  postAuthRouter,
		BookingService:  bookingService,
		EarningsService: earningsService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		DraftStore: draftStore,
	}
}
