package services

import (
	"context"
	"fmt"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
)

// rewardService implements the RewardSvcFacade. Every point-earning event
// in the system funnels through Grant.
type rewardService struct {
	rewardRepo portsrepo.RewardRepository
}

// NewRewardService creates a new instance of rewardService.
func NewRewardService(rewardRepo portsrepo.RewardRepository) portssvc.RewardSvcFacade {
	return &rewardService{rewardRepo: rewardRepo}
}

// Grant appends a ledger entry and applies the delta to the user's totals.
// Negative amounts are rejected: clamping would break the invariant that
// the ledger sum reconciles with the user's experience total.
func (s *rewardService) Grant(ctx context.Context, userID int64, amount int64, reason string, source string) error {
	if amount < 0 {
		return fmt.Errorf("reward amount must be non-negative, got %d: %w", amount, apperrors.ErrValidation)
	}
	if reason == "" {
		return fmt.Errorf("reward reason is required: %w", apperrors.ErrValidation)
	}
	if err := s.rewardRepo.GrantReward(ctx, userID, amount, reason, source); err != nil {
		return fmt.Errorf("failed to grant reward: %w", err)
	}
	return nil
}
