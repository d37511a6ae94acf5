package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/dto"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quizHandler handles quiz listing, attempts and the daily status query.
type quizHandler struct {
	quizService portssvc.QuizSvcFacade
}

// newQuizHandler creates a new quizHandler.
func newQuizHandler(qs portssvc.QuizSvcFacade) *quizHandler {
	return &quizHandler{quizService: qs}
}

// registerQuizRoutes registers all quiz-related routes. The listing is
// public; attempting and the status query require an access token.
func registerQuizRoutes(rg *gin.RouterGroup, jwtSecret string, quizService portssvc.QuizSvcFacade) {
	h := newQuizHandler(quizService)

	auth := middleware.AuthMiddleware(jwtSecret)
	quizzes := rg.Group("/quizzes")
	{
		quizzes.GET("", h.listQuizzes)
		quizzes.POST("/:id/attempt", auth, h.attemptQuiz)
		quizzes.GET("/today/status", auth, h.quizStatusToday)
	}
}

// listQuizzes godoc
// @Summary List quizzes
// @Description Returns all quizzes ordered by display date, newest first.
// @Tags quizzes
// @Produce json
// @Success 200 {object} dto.Response
// @Router /quizzes [get]
func (h *quizHandler) listQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list quizzes")
		return
	}

	respondList(c, http.StatusOK, dto.ToQuizResponses(quizzes))
}

// attemptQuiz godoc
// @Summary Attempt a quiz
// @Description Records the submitted answer and grants the fixed reward when it is correct.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param attempt body dto.QuizAttemptRequest true "Submitted answer"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /quizzes/{id}/attempt [post]
func (h *quizHandler) attemptQuiz(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, "Unauthorized")
		return
	}

	quizID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid quiz id")
		return
	}

	var req dto.QuizAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	result, err := h.quizService.Attempt(c.Request.Context(), userID, quizID, req.Answer)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, err, "Quiz not found")
			return
		}
		respondError(c, err, "Failed to attempt quiz")
		return
	}

	respond(c, http.StatusOK, dto.ToQuizAttemptResponse(result))
}

// quizStatusToday godoc
// @Summary Today's quiz status
// @Description Reports whether the caller already attempted the quiz shown today and with what outcome.
// @Tags quizzes
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /quizzes/today/status [get]
func (h *quizHandler) quizStatusToday(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, "Unauthorized")
		return
	}

	attempted, isCorrect, err := h.quizService.StatusToday(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get quiz status")
		return
	}

	respond(c, http.StatusOK, dto.QuizStatusResponse{Attempted: attempted, IsCorrect: isCorrect})
}
