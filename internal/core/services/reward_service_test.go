package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockRewardRepository is a mock type for the RewardRepository interface
type MockRewardRepository struct {
	mock.Mock
}

func (m *MockRewardRepository) GrantReward(ctx context.Context, userID int64, amount int64, reason string, source string) error {
	args := m.Called(ctx, userID, amount, reason, source)
	return args.Error(0)
}

func (m *MockRewardRepository) FindRewardsByUser(ctx context.Context, userID int64) ([]domain.Reward, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reward), args.Error(1)
}

// --- Test Suite Setup ---

type RewardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRewardRepository
}

func (suite *RewardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRewardRepository)
}

// --- Test Cases ---

func (suite *RewardServiceTestSuite) TestGrant_Success() {
	ctx := context.Background()
	service := services.NewRewardService(suite.mockRepo)
	suite.mockRepo.On("GrantReward", ctx, int64(7), int64(10), "퀴즈 정답", domain.RewardSourceQuiz).Return(nil).Once()

	err := service.Grant(ctx, 7, 10, "퀴즈 정답", domain.RewardSourceQuiz)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RewardServiceTestSuite) TestGrant_NegativeAmountRejected() {
	ctx := context.Background()
	service := services.NewRewardService(suite.mockRepo)

	err := service.Grant(ctx, 7, -10, "차감", domain.RewardSourceManual)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "GrantReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RewardServiceTestSuite) TestGrant_EmptyReasonRejected() {
	ctx := context.Background()
	service := services.NewRewardService(suite.mockRepo)

	err := service.Grant(ctx, 7, 10, "", domain.RewardSourceManual)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "GrantReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RewardServiceTestSuite) TestGrant_ZeroAmountAllowed() {
	ctx := context.Background()
	service := services.NewRewardService(suite.mockRepo)
	suite.mockRepo.On("GrantReward", ctx, int64(7), int64(0), "참여 기록", domain.RewardSourceManual).Return(nil).Once()

	err := service.Grant(ctx, 7, 0, "참여 기록", domain.RewardSourceManual)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RewardServiceTestSuite) TestGrant_RepoErrorWrapped() {
	ctx := context.Background()
	service := services.NewRewardService(suite.mockRepo)
	suite.mockRepo.On("GrantReward", ctx, int64(7), int64(10), "퀴즈 정답", domain.RewardSourceQuiz).Return(apperrors.ErrNotFound).Once()

	err := service.Grant(ctx, 7, 10, "퀴즈 정답", domain.RewardSourceQuiz)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestRewardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RewardServiceTestSuite))
}

// fakeLedgerRepo mimics the transactional repository: each grant appends a
// ledger row and updates the user's totals under one lock, the way the SQL
// implementation serializes on the user row.
type fakeLedgerRepo struct {
	mu        sync.Mutex
	xp        int64
	points    int64
	level     int
	levelName string
	ledger    []domain.Reward
}

func (f *fakeLedgerRepo) GrantReward(_ context.Context, userID int64, amount int64, reason string, source string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ledger = append(f.ledger, domain.Reward{
		UserID:           userID,
		ExperiencePoints: amount,
		RewardReason:     reason,
		SourceType:       source,
	})
	f.xp += amount
	f.points += amount
	f.level, f.levelName = domain.LevelForXP(f.xp)
	return nil
}

func (f *fakeLedgerRepo) FindRewardsByUser(_ context.Context, _ int64) ([]domain.Reward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Reward, len(f.ledger))
	copy(out, f.ledger)
	return out, nil
}

// Fifty concurrent grants of 10 XP each must land the user on exactly 500
// experience with a reconciling ledger and a level derived from the final
// total, with no lost updates.
func TestGrant_ConcurrentGrantsReconcile(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLedgerRepo{level: 1, levelName: "관심인"}
	service := services.NewRewardService(repo)

	const grants = 50
	errs := make(chan error, grants)
	var wg sync.WaitGroup
	wg.Add(grants)
	for i := 0; i < grants; i++ {
		go func() {
			defer wg.Done()
			errs <- service.Grant(ctx, 1, 10, "퀴즈 정답", domain.RewardSourceQuiz)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, int64(500), repo.xp)
	require.Equal(t, int64(500), repo.points)

	ledger, err := repo.FindRewardsByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ledger, grants)

	var sum int64
	for _, entry := range ledger {
		sum += entry.ExperiencePoints
	}
	require.Equal(t, repo.xp, sum)

	wantLevel, wantName := domain.LevelForXP(repo.xp)
	require.Equal(t, wantLevel, repo.level)
	require.Equal(t, wantName, repo.levelName)
	require.Equal(t, 6, repo.level)
	require.Equal(t, "전문가", repo.levelName)
}
