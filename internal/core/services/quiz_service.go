package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
)

// Fixed reward for a correct quiz answer.
const (
	quizRewardPoints     = 10
	quizRewardExperience = 10
	quizRewardReason     = "퀴즈 정답"
)

// quizService implements the QuizSvcFacade.
type quizService struct {
	quizRepo  portsrepo.QuizRepository
	rewardSvc portssvc.RewardSvcFacade
}

// NewQuizService creates a new instance of quizService.
func NewQuizService(quizRepo portsrepo.QuizRepository, rewardSvc portssvc.RewardSvcFacade) portssvc.QuizSvcFacade {
	return &quizService{
		quizRepo:  quizRepo,
		rewardSvc: rewardSvc,
	}
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	quizzes, err := s.quizRepo.FindQuizzes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

// Attempt checks the submitted answer, records the attempt, and grants the
// fixed reward exactly once on success. The attempt row is written before
// any reward is considered, for correct and incorrect answers alike.
func (s *quizService) Attempt(ctx context.Context, userID int64, quizID int64, answer string) (*domain.QuizAttemptResult, error) {
	quiz, err := s.quizRepo.FindQuizByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load quiz %d: %w", quizID, err)
	}

	// Case-insensitive, whitespace-trimmed exact match against the stored
	// correct answer string. Choice indexes are never compared.
	submitted := strings.TrimSpace(answer)
	isCorrect := strings.EqualFold(submitted, strings.TrimSpace(quiz.CorrectAnswer))

	var pointsEarned, experienceEarned int64
	if isCorrect {
		pointsEarned = quizRewardPoints
		experienceEarned = quizRewardExperience
	}

	attempt := domain.QuizAttempt{
		UserID:           userID,
		QuizID:           quizID,
		Answer:           submitted,
		IsCorrect:        isCorrect,
		PointsEarned:     pointsEarned,
		ExperienceEarned: experienceEarned,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.quizRepo.SaveAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to record quiz attempt: %w", err)
	}

	if isCorrect {
		if err := s.rewardSvc.Grant(ctx, userID, quizRewardExperience, quizRewardReason, domain.RewardSourceQuiz); err != nil {
			return nil, err
		}
	}

	return &domain.QuizAttemptResult{
		IsCorrect:        isCorrect,
		PointsEarned:     pointsEarned,
		ExperienceEarned: experienceEarned,
		RewardGiven:      isCorrect,
	}, nil
}

// StatusToday reports whether the user already attempted the quiz whose
// display date is the local calendar date. The most recent attempt wins.
func (s *quizService) StatusToday(ctx context.Context, userID int64) (bool, bool, error) {
	today := time.Now().Format("2006-01-02")

	quiz, err := s.quizRepo.FindQuizByDisplayDate(ctx, today)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to find today's quiz: %w", err)
	}

	attempt, err := s.quizRepo.FindLatestAttempt(ctx, userID, quiz.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to find latest attempt: %w", err)
	}

	return true, attempt.IsCorrect, nil
}
