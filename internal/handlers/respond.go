package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/dto"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respond writes a success envelope with the given items.
func respond(c *gin.Context, status int, items ...any) {
	c.JSON(status, dto.NewSuccessResponse(status, items...))
}

// respondList writes a success envelope around an already-built slice.
func respondList[T any](c *gin.Context, status int, items []T) {
	c.JSON(status, dto.NewListResponse(status, items))
}

// respondError classifies err into one of the four error kinds and writes
// the matching error envelope. The message shown to the caller is the
// human-readable one supplied by the handler; error internals only go to
// the log.
func respondError(c *gin.Context, err error, message string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			status = appErr.Code
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(message, slog.String("error", err.Error()))
	} else {
		logger.Warn(message, slog.String("error", err.Error()))
	}

	c.JSON(status, dto.NewErrorResponse(status, message))
}

// respondBadRequest writes a 400 error envelope for malformed input.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message))
}

// respondUnauthorized writes a 401 error envelope.
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, message))
}
