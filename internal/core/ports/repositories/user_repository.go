package repositories

import (
	"context"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
)

// UserRepository persists and retrieves user aggregates.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with its assigned id.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// FindUserByID returns apperrors.ErrNotFound when no user exists.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	// FindUserByKakaoID looks up a user by external identity.
	FindUserByKakaoID(ctx context.Context, kakaoID string) (*domain.User, error)
}
