package repositories

import (
	"context"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
)

// BikeLogRepository persists ride records.
type BikeLogRepository interface {
	SaveBikeLog(ctx context.Context, log domain.BikeLog) (*domain.BikeLog, error)
	FindBikeLogsByUser(ctx context.Context, userID int64) ([]domain.BikeLog, error)
	// CountBikeLogsForDate counts the user's logs created on the given
	// calendar date (formatted 2006-01-02).
	CountBikeLogsForDate(ctx context.Context, userID int64, date string) (int64, error)
}
