package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo   *MockUserRepository
	mockRewardRepo *MockRewardRepository
	mockRewardSvc  *MockRewardSvc
	service        portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockRewardRepo = new(MockRewardRepository)
	suite.mockRewardSvc = new(MockRewardSvc)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockRewardRepo, suite.mockRewardSvc)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	want := &domain.User{ID: 42, Username: "라이더", Level: 2, LevelName: "입문자"}
	suite.mockUserRepo.On("FindUserByID", ctx, int64(42)).Return(want, nil).Once()

	got, err := suite.service.GetUserByID(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(want, got)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByID(ctx, 99)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestListRewards_Success() {
	ctx := context.Background()
	ledger := []domain.Reward{
		{ID: 2, UserID: 42, ExperiencePoints: 10, RewardReason: "퀴즈 정답", SourceType: domain.RewardSourceQuiz},
		{ID: 1, UserID: 42, ExperiencePoints: 5, RewardReason: "이벤트 참여", SourceType: domain.RewardSourceManual},
	}
	suite.mockRewardRepo.On("FindRewardsByUser", ctx, int64(42)).Return(ledger, nil).Once()

	got, err := suite.service.ListRewards(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(ledger, got)
}

func (suite *UserServiceTestSuite) TestListRewards_RepoError() {
	ctx := context.Background()
	suite.mockRewardRepo.On("FindRewardsByUser", ctx, int64(42)).Return(nil, errors.New("db down")).Once()

	_, err := suite.service.ListRewards(ctx, 42)

	suite.Require().Error(err)
}

func (suite *UserServiceTestSuite) TestAddScore_GoesThroughLedgerAsManual() {
	ctx := context.Background()
	suite.mockRewardSvc.On("Grant", ctx, int64(42), int64(25), "이벤트 보상", domain.RewardSourceManual).Return(nil).Once()

	err := suite.service.AddScore(ctx, 42, 25, "이벤트 보상")

	suite.Require().NoError(err)
	suite.mockRewardSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAddScore_ValidationErrorPropagates() {
	ctx := context.Background()
	suite.mockRewardSvc.On("Grant", ctx, int64(42), int64(-5), "차감", domain.RewardSourceManual).Return(apperrors.ErrValidation).Once()

	err := suite.service.AddScore(ctx, 42, -5, "차감")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRewardSvc.AssertNotCalled(suite.T(), "GrantReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
