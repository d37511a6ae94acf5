package services

import (
	"context"
	"fmt"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
)

// userService implements the UserSvcFacade.
type userService struct {
	userRepo   portsrepo.UserRepository
	rewardRepo portsrepo.RewardRepository
	rewardSvc  portssvc.RewardSvcFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepository, rewardRepo portsrepo.RewardRepository, rewardSvc portssvc.RewardSvcFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		rewardRepo: rewardRepo,
		rewardSvc:  rewardSvc,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListRewards(ctx context.Context, userID int64) ([]domain.Reward, error) {
	rewards, err := s.rewardRepo.FindRewardsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

// AddScore applies a manual score adjustment through the reward ledger so
// the grant shows up in the audit trail with the "manual" source tag.
func (s *userService) AddScore(ctx context.Context, userID int64, amount int64, reason string) error {
	return s.rewardSvc.Grant(ctx, userID, amount, reason, domain.RewardSourceManual)
}
