package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockQuizRepository is a mock type for the QuizRepository interface
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) FindQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) FindQuizByID(ctx context.Context, quizID int64) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) FindQuizByDisplayDate(ctx context.Context, date string) (*domain.Quiz, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) SaveAttempt(ctx context.Context, attempt domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockQuizRepository) FindLatestAttempt(ctx context.Context, userID, quizID int64) (*domain.QuizAttempt, error) {
	args := m.Called(ctx, userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizAttempt), args.Error(1)
}

func (m *MockQuizRepository) CountQuizzes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizRepository) SaveQuiz(ctx context.Context, quiz domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

// MockRewardSvc is a mock type for the RewardSvcFacade interface
type MockRewardSvc struct {
	mock.Mock
}

func (m *MockRewardSvc) Grant(ctx context.Context, userID int64, amount int64, reason string, source string) error {
	args := m.Called(ctx, userID, amount, reason, source)
	return args.Error(0)
}

// --- Test Suite Setup ---

type QuizServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockQuizRepository
	mockRewardSvc *MockRewardSvc
	service       portssvc.QuizSvcFacade
}

func (suite *QuizServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockQuizRepository)
	suite.mockRewardSvc = new(MockRewardSvc)
	suite.service = services.NewQuizService(suite.mockRepo, suite.mockRewardSvc)
}

func speedLimitQuiz() *domain.Quiz {
	return &domain.Quiz{
		ID:            1,
		Question:      "자전거 도로에서의 최고 속도 제한은?",
		Answers:       []string{"시속 20km", "시속 30km", "시속 40km", "제한 없음"},
		CorrectAnswer: "시속 20km",
		DisplayDate:   time.Now().Format("2006-01-02"),
		QuizType:      domain.QuizTypeSelect,
	}
}

// --- Test Cases ---

func (suite *QuizServiceTestSuite) TestAttempt_CorrectAnswerGrantsRewardOnce() {
	ctx := context.Background()
	suite.mockRepo.On("FindQuizByID", ctx, int64(1)).Return(speedLimitQuiz(), nil).Once()
	suite.mockRepo.On("SaveAttempt", ctx, mock.MatchedBy(func(a domain.QuizAttempt) bool {
		// Trimmed but case-preserved, exactly as submitted.
		return a.UserID == 42 && a.QuizID == 1 && a.IsCorrect && a.Answer == "시속 20KM"
	})).Return(nil).Once()
	suite.mockRewardSvc.On("Grant", ctx, int64(42), int64(10), "퀴즈 정답", domain.RewardSourceQuiz).Return(nil).Once()

	// Leading/trailing whitespace and letter case must not matter.
	result, err := suite.service.Attempt(ctx, 42, 1, "  시속 20KM ")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.IsCorrect)
	suite.True(result.RewardGiven)
	suite.Equal(int64(10), result.PointsEarned)
	suite.Equal(int64(10), result.ExperienceEarned)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRewardSvc.AssertExpectations(suite.T())
}

func (suite *QuizServiceTestSuite) TestAttempt_IncorrectAnswerIsRecordedWithoutReward() {
	ctx := context.Background()
	suite.mockRepo.On("FindQuizByID", ctx, int64(1)).Return(speedLimitQuiz(), nil).Once()
	suite.mockRepo.On("SaveAttempt", ctx, mock.MatchedBy(func(a domain.QuizAttempt) bool {
		return !a.IsCorrect && a.PointsEarned == 0 && a.ExperienceEarned == 0
	})).Return(nil).Once()

	result, err := suite.service.Attempt(ctx, 42, 1, "시속 30km")

	suite.Require().NoError(err)
	suite.False(result.IsCorrect)
	suite.False(result.RewardGiven)
	suite.Equal(int64(0), result.PointsEarned)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRewardSvc.AssertNotCalled(suite.T(), "Grant", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuizServiceTestSuite) TestAttempt_RepeatAttemptsEachGetARow() {
	ctx := context.Background()
	suite.mockRepo.On("FindQuizByID", ctx, int64(1)).Return(speedLimitQuiz(), nil).Twice()
	suite.mockRepo.On("SaveAttempt", ctx, mock.AnythingOfType("domain.QuizAttempt")).Return(nil).Twice()
	suite.mockRewardSvc.On("Grant", ctx, int64(42), int64(10), "퀴즈 정답", domain.RewardSourceQuiz).Return(nil).Twice()

	_, err := suite.service.Attempt(ctx, 42, 1, "시속 20km")
	suite.Require().NoError(err)
	_, err = suite.service.Attempt(ctx, 42, 1, "시속 20km")
	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRewardSvc.AssertExpectations(suite.T())
}

func (suite *QuizServiceTestSuite) TestAttempt_QuizNotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindQuizByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.Attempt(ctx, 42, 99, "무엇이든")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Nil(result)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAttempt", mock.Anything, mock.Anything)
	suite.mockRewardSvc.AssertNotCalled(suite.T(), "Grant", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuizServiceTestSuite) TestAttempt_RecordFailurePropagates() {
	ctx := context.Background()
	suite.mockRepo.On("FindQuizByID", ctx, int64(1)).Return(speedLimitQuiz(), nil).Once()
	suite.mockRepo.On("SaveAttempt", ctx, mock.AnythingOfType("domain.QuizAttempt")).Return(errors.New("db down")).Once()

	result, err := suite.service.Attempt(ctx, 42, 1, "시속 20km")

	suite.Require().Error(err)
	suite.Nil(result)
	// The reward must not be granted when the attempt row could not be written.
	suite.mockRewardSvc.AssertNotCalled(suite.T(), "Grant", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuizServiceTestSuite) TestStatusToday_NoQuizToday() {
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")
	suite.mockRepo.On("FindQuizByDisplayDate", ctx, today).Return(nil, apperrors.ErrNotFound).Once()

	attempted, isCorrect, err := suite.service.StatusToday(ctx, 42)

	suite.Require().NoError(err)
	suite.False(attempted)
	suite.False(isCorrect)
}

func (suite *QuizServiceTestSuite) TestStatusToday_NotYetAttempted() {
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")
	suite.mockRepo.On("FindQuizByDisplayDate", ctx, today).Return(speedLimitQuiz(), nil).Once()
	suite.mockRepo.On("FindLatestAttempt", ctx, int64(42), int64(1)).Return(nil, apperrors.ErrNotFound).Once()

	attempted, isCorrect, err := suite.service.StatusToday(ctx, 42)

	suite.Require().NoError(err)
	suite.False(attempted)
	suite.False(isCorrect)
}

func (suite *QuizServiceTestSuite) TestStatusToday_LatestAttemptWins() {
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")
	suite.mockRepo.On("FindQuizByDisplayDate", ctx, today).Return(speedLimitQuiz(), nil).Once()
	suite.mockRepo.On("FindLatestAttempt", ctx, int64(42), int64(1)).Return(&domain.QuizAttempt{
		UserID:    42,
		QuizID:    1,
		IsCorrect: true,
	}, nil).Once()

	attempted, isCorrect, err := suite.service.StatusToday(ctx, 42)

	suite.Require().NoError(err)
	suite.True(attempted)
	suite.True(isCorrect)
}

func TestQuizServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuizServiceTestSuite))
}
