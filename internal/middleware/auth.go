package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/dto"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

const unauthorizedMessage = "invalid or missing credentials"

// BearerToken extracts the bearer credential from the Authorization header.
// It returns false when the header is absent or not a Bearer scheme.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware creates a Gin middleware handler that validates access
// tokens. Missing header, bad scheme, decode failure and wrong token kind
// all produce the same unauthorized outcome; the details only go to the log.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, ok := BearerToken(c)
		if !ok {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, unauthorizedMessage))
			return
		}

		claims, err := utils.ParseToken(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, unauthorizedMessage))
			return
		}

		if claims.TokenType != utils.TokenKindAccess {
			logger.Warn("Wrong token kind presented", slog.String("token_type", claims.TokenType))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, unauthorizedMessage))
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.Error("User ID (subject) missing from valid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, unauthorizedMessage))
			return
		}

		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)

		enrichedLogger := logger.With(slog.Int64("user_id", userID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
