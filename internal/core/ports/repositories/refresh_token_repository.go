package repositories

import (
	"context"
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
)

// RefreshTokenRepository persists issued refresh tokens (hashed) for later
// validation and revocation.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	// FindByUserAndHash returns apperrors.ErrNotFound when no matching row exists.
	FindByUserAndHash(ctx context.Context, userID int64, tokenHash string) (*domain.RefreshToken, error)
	// DeleteAllForUser removes every refresh token of the user and reports
	// how many rows were deleted. Deleting zero rows is not an error.
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}
