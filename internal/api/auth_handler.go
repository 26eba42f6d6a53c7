package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/wanderbook/travel-booking-backend/internal/auth"
	"github.com/wanderbook/travel-booking-backend/internal/pkg/request"
	"github.com/wanderbook/travel-booking-backend/internal/postauth"
	"github.com/wanderbook/travel-booking-backend/internal/user"
)

type AuthHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
	postAuth    *postauth.Router
}

func NewAuthHandler(
	userService user.Service,
	jwtManager *auth.JWTManager,
	postAuth *postauth.Router,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
		postAuth:    postAuth,
	}
}

//
// POST /v1/auth/register
//

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()

	u, err := h.userService.Register(ctx, req.Email, req.Password, req.DisplayName, req.Role)
	if err != nil {
		switch err {
		case user.ErrEmailAlreadyUsed:
			c.JSON(http.StatusConflict, gin.H{"error": "email already used"})
		case user.ErrInvalidRole:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	h.respondAuthenticated(c, u, req.Navigation)
}

//
// POST /v1/auth/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid email or password",
		})
		return
	}

	h.respondAuthenticated(c, u, req.Navigation)
}

// respondAuthenticated issues the token and computes the post-auth
// destination, consuming any stashed reservation draft for this session.
func (h *AuthHandler) respondAuthenticated(c *gin.Context, u *user.User, nav postauth.NavigationState) {
	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to generate token",
		})
		return
	}

	sessionID := c.GetHeader(request.SessionHeader)
	dest, err := h.postAuth.RouteAfterAuth(c.Request.Context(), sessionID,
		postauth.AuthResult{UserID: u.ID, Role: u.Role}, nav)
	if err != nil {
		// A broken draft slot must not block sign-in; fall back to role routing.
		log.Warn().Err(err).Str("user_id", u.ID).Msg("post-auth routing failed, using role landing")
		dest, _ = h.postAuth.RouteAfterAuth(c.Request.Context(), "",
			postauth.AuthResult{UserID: u.ID, Role: u.Role}, postauth.NavigationState{})
	}

	status := http.StatusOK
	if c.FullPath() == "/v1/auth/register" {
		status = http.StatusCreated
	}

	c.JSON(status, AuthResponse{
		AccessToken: token,
		User:        NewUserResponse(u),
		Destination: dest,
	})
}

//
// GET /v1/me
//

func (h *AuthHandler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{User: NewUserResponse(u)})
}
