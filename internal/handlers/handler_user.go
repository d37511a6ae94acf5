package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/dto"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles profile, reward ledger and level requests.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes. The level lookup is
// public by user id; everything else requires an access token.
func registerUserRoutes(users *gin.RouterGroup, jwtSecret string, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	auth := middleware.AuthMiddleware(jwtSecret)
	users.GET("/profile", auth, h.getProfile)
	users.GET("/rewards", auth, h.listRewards)
	users.PUT("/score", auth, h.updateScore)
	users.GET("/:id/level", h.getLevel)
}

// getProfile godoc
// @Summary Get own profile
// @Description Returns the authenticated user's profile including experience, points and level.
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, "Unauthorized")
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	respond(c, http.StatusOK, dto.ToUserProfileResponse(user))
}

// listRewards godoc
// @Summary List own reward ledger
// @Description Returns the authenticated user's reward entries, newest first.
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /users/rewards [get]
func (h *userHandler) listRewards(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, "Unauthorized")
		return
	}

	rewards, err := h.userService.ListRewards(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list rewards")
		return
	}

	respondList(c, http.StatusOK, dto.ToRewardResponses(rewards))
}

// updateScore godoc
// @Summary Apply a manual score adjustment
// @Description Grants the given experience points to the caller through the reward ledger.
// @Tags users
// @Accept json
// @Produce json
// @Param score body dto.ScoreUpdateRequest true "Score adjustment"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /users/score [put]
func (h *userHandler) updateScore(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, "Unauthorized")
		return
	}

	var req dto.ScoreUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.AddScore(c.Request.Context(), userID, req.ExperiencePoints, req.RewardReason); err != nil {
		respondError(c, err, "Failed to update score")
		return
	}

	respond(c, http.StatusOK, dto.SuccessResponse{Success: true})
}

// getLevel godoc
// @Summary Get a user's level
// @Description Returns the level, level name and experience of the given user. Public by id.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /users/{id}/level [get]
func (h *userHandler) getLevel(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid user id")
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	respond(c, http.StatusOK, dto.ToLevelResponse(user))
}
