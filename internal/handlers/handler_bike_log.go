package handlers

import (
	"net/http"

	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/dto"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bikeLogHandler handles ride records.
type bikeLogHandler struct {
	bikeLogService portssvc.BikeLogSvcFacade
}

// newBikeLogHandler creates a new bikeLogHandler.
func newBikeLogHandler(bs portssvc.BikeLogSvcFacade) *bikeLogHandler {
	return &bikeLogHandler{bikeLogService: bs}
}

// registerBikeLogRoutes registers the ride record routes under /users.
// All of them require an access token.
func registerBikeLogRoutes(users *gin.RouterGroup, jwtSecret string, bikeLogService portssvc.BikeLogSvcFacade) {
	h := newBikeLogHandler(bikeLogService)

	auth := middleware.AuthMiddleware(jwtSecret)
	logs := users.Group("/bike-logs", auth)
	{
		logs.POST("", h.createBikeLog)
		logs.GET("", h.listBikeLogs)
		logs.GET("/today/count", h.countToday)
	}
}

// createBikeLog godoc
// @Summary Record a ride
// @Description Stores a ride with both verification photos. Verification stays pending until an operator reviews it.
// @Tags bike-logs
// @Accept json
// @Produce json
// @Param log body dto.CreateBikeLogRequest true "Ride record"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /users/bike-logs [post]
func (h *bikeLogHandler) createBikeLog(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, "Unauthorized")
		return
	}

	var req dto.CreateBikeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	log, err := h.bikeLogService.CreateBikeLog(c.Request.Context(), userID, req.Description, req.BikePhotoURL, req.SafetyGearPhotoURL)
	if err != nil {
		respondError(c, err, "Failed to record ride")
		return
	}

	respond(c, http.StatusCreated, dto.ToBikeLogResponse(*log))
}

// listBikeLogs godoc
// @Summary List the caller's rides
// @Tags bike-logs
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /users/bike-logs [get]
func (h *bikeLogHandler) listBikeLogs(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, "Unauthorized")
		return
	}

	logs, err := h.bikeLogService.ListBikeLogs(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list rides")
		return
	}

	respondList(c, http.StatusOK, dto.ToBikeLogResponses(logs))
}

// countToday godoc
// @Summary Count today's rides
// @Description Returns how many rides the caller has logged today. The frontend uses this for the daily cap.
// @Tags bike-logs
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /users/bike-logs/today/count [get]
func (h *bikeLogHandler) countToday(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, "Unauthorized")
		return
	}

	count, err := h.bikeLogService.CountToday(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to count rides")
		return
	}

	respond(c, http.StatusOK, dto.BikeLogCountResponse{Count: count})
}
