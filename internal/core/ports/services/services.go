// Package services defines the facades exposed by the core services to the
// HTTP layer. Handlers depend on these interfaces, never on concrete
// service types.
package services

import (
	"context"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
)

// AuthSvcFacade is the session issuer: it exchanges an external identity
// for local credentials and manages the refresh-token lifecycle.
type AuthSvcFacade interface {
	// Login exchanges a Kakao authorization code for a token pair,
	// registering the user on first login.
	Login(ctx context.Context, code string) (accessToken string, refreshToken string, err error)
	// Refresh validates a refresh-kind token against the persisted row and
	// mints a fresh access token.
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	// Logout revokes all refresh tokens of the token's subject. It is
	// best-effort and never fails on an invalid or missing credential.
	Logout(ctx context.Context, accessToken string) error
}

// UserSvcFacade serves profile, ledger and level reads plus manual grants.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	ListRewards(ctx context.Context, userID int64) ([]domain.Reward, error)
	// AddScore applies a manual score adjustment through the reward ledger.
	AddScore(ctx context.Context, userID int64, amount int64, reason string) error
}

// RewardSvcFacade is the reward ledger entry point.
type RewardSvcFacade interface {
	Grant(ctx context.Context, userID int64, amount int64, reason string, source string) error
}

// QuizSvcFacade processes quiz attempts and status queries.
type QuizSvcFacade interface {
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	Attempt(ctx context.Context, userID int64, quizID int64, answer string) (*domain.QuizAttemptResult, error)
	StatusToday(ctx context.Context, userID int64) (attempted bool, isCorrect bool, err error)
}

// BikeLogSvcFacade manages ride records.
type BikeLogSvcFacade interface {
	CreateBikeLog(ctx context.Context, userID int64, description, bikePhotoURL, safetyGearPhotoURL string) (*domain.BikeLog, error)
	ListBikeLogs(ctx context.Context, userID int64) ([]domain.BikeLog, error)
	CountToday(ctx context.Context, userID int64) (int64, error)
}
