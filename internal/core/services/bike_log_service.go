package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
)

const defaultBikeLogDescription = "자전거 타기 인증"

// bikeLogService implements the BikeLogSvcFacade. Logs start out pending;
// verification (and its reward grant) is an admin-side concern.
type bikeLogService struct {
	bikeLogRepo portsrepo.BikeLogRepository
}

// NewBikeLogService creates a new instance of bikeLogService.
func NewBikeLogService(bikeLogRepo portsrepo.BikeLogRepository) portssvc.BikeLogSvcFacade {
	return &bikeLogService{bikeLogRepo: bikeLogRepo}
}

func (s *bikeLogService) CreateBikeLog(ctx context.Context, userID int64, description, bikePhotoURL, safetyGearPhotoURL string) (*domain.BikeLog, error) {
	if description == "" {
		description = defaultBikeLogDescription
	}
	now := time.Now().UTC()
	log := domain.BikeLog{
		UserID:             userID,
		Description:        description,
		BikePhotoURL:       bikePhotoURL,
		SafetyGearPhotoURL: safetyGearPhotoURL,
		StartedAt:          now,
		CreatedAt:          now,
		VerificationStatus: domain.BikeLogStatusPending,
	}
	created, err := s.bikeLogRepo.SaveBikeLog(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to save bike log: %w", err)
	}
	return created, nil
}

func (s *bikeLogService) ListBikeLogs(ctx context.Context, userID int64) ([]domain.BikeLog, error) {
	logs, err := s.bikeLogRepo.FindBikeLogsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bike logs: %w", err)
	}
	return logs, nil
}

func (s *bikeLogService) CountToday(ctx context.Context, userID int64) (int64, error) {
	today := time.Now().Format("2006-01-02")
	count, err := s.bikeLogRepo.CountBikeLogsForDate(ctx, userID, today)
	if err != nil {
		return 0, fmt.Errorf("failed to count today's bike logs: %w", err)
	}
	return count, nil
}
