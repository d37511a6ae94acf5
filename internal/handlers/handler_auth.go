package handlers

import (
	"net/http"

	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/dto"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles login, token refresh and logout.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the session lifecycle routes. Login is rate
// limited per IP; refresh and logout handle their credentials themselves
// and bypass the access-token middleware.
func registerAuthRoutes(users *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	// 5 login attempts per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	users.POST("", middleware.RateLimit(ipLimiter), h.login)
	users.POST("/refresh", h.refresh)
	users.POST("/logout", h.logout)
}

// login godoc
// @Summary Kakao OAuth login / registration
// @Description Exchanges a Kakao authorization code for a token pair, registering the user on first login.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.OAuthLoginRequest true "Authorization code"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /users [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.OAuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	accessToken, refreshToken, err := h.authService.Login(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	respond(c, http.StatusCreated, dto.OAuthLoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// refresh godoc
// @Summary Refresh access token
// @Description Validates the presented refresh token against its stored record and mints a fresh access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /users/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	tokenString, ok := middleware.BearerToken(c)
	if !ok {
		respondUnauthorized(c, "Cannot refresh - invalid token")
		return
	}

	accessToken, err := h.authService.Refresh(c.Request.Context(), tokenString)
	if err != nil {
		respondError(c, err, "Cannot refresh - invalid token")
		return
	}

	respond(c, http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}

// logout godoc
// @Summary Logout
// @Description Revokes all refresh tokens of the caller. Always succeeds, even without a valid credential.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /users/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	// Best effort: an absent or invalid credential still yields success so
	// logout is idempotent from the caller's perspective.
	tokenString, _ := middleware.BearerToken(c)
	if err := h.authService.Logout(c.Request.Context(), tokenString); err != nil {
		respondError(c, err, "Logout failed")
		return
	}

	respond(c, http.StatusOK, dto.SuccessResponse{Success: true})
}
