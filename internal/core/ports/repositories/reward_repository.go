package repositories

import (
	"context"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
)

// RewardRepository owns the append-only reward ledger and the coupled user
// totals.
type RewardRepository interface {
	// GrantReward atomically appends a ledger row, increases the user's
	// experience and points by amount, and recomputes level/level_name from
	// the post-increment experience. Concurrent grants to the same user
	// serialize; either all three writes apply or none do.
	// Returns apperrors.ErrNotFound when the user does not exist.
	GrantReward(ctx context.Context, userID int64, amount int64, reason string, source string) error
	// FindRewardsByUser lists a user's ledger entries, newest first.
	FindRewardsByUser(ctx context.Context, userID int64) ([]domain.Reward, error)
}
