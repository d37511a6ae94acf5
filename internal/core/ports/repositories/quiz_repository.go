package repositories

import (
	"context"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
)

// QuizRepository reads quizzes and appends attempt records. Quiz rows are
// written only by the seeder; attempts are append-only.
type QuizRepository interface {
	FindQuizzes(ctx context.Context) ([]domain.Quiz, error)
	// FindQuizByID returns apperrors.ErrNotFound when the quiz does not exist.
	FindQuizByID(ctx context.Context, quizID int64) (*domain.Quiz, error)
	// FindQuizByDisplayDate looks up the quiz shown on the given calendar
	// date (formatted 2006-01-02).
	FindQuizByDisplayDate(ctx context.Context, date string) (*domain.Quiz, error)
	SaveAttempt(ctx context.Context, attempt domain.QuizAttempt) error
	// FindLatestAttempt returns the most recent attempt of the user on the
	// quiz, or apperrors.ErrNotFound when none exists.
	FindLatestAttempt(ctx context.Context, userID, quizID int64) (*domain.QuizAttempt, error)

	// Seeding support.
	CountQuizzes(ctx context.Context) (int64, error)
	SaveQuiz(ctx context.Context, quiz domain.Quiz) error
}
