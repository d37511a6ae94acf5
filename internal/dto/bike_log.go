package dto

import (
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
)

// CreateBikeLogRequest records a ride. Photo URLs point at files already
// persisted by the upload collaborator.
type CreateBikeLogRequest struct {
	Description        string `json:"description"`
	BikePhotoURL       string `json:"bike_photo_url" binding:"required"`
	SafetyGearPhotoURL string `json:"safety_gear_photo_url" binding:"required"`
}

// BikeLogResponse is one ride record.
type BikeLogResponse struct {
	ID                 int64   `json:"id"`
	Description        string  `json:"description"`
	BikePhotoURL       string  `json:"bike_photo_url"`
	SafetyGearPhotoURL string  `json:"safety_gear_photo_url"`
	StartedAt          string  `json:"started_at"`
	CreatedAt          string  `json:"created_at"`
	VerificationStatus string  `json:"verification_status"`
	VerifiedAt         *string `json:"verified_at"`
	PointsAwarded      int64   `json:"points_awarded"`
	AdminNotes         *string `json:"admin_notes"`
}

func ToBikeLogResponse(l domain.BikeLog) BikeLogResponse {
	var verifiedAt *string
	if l.VerifiedAt != nil {
		s := l.VerifiedAt.Format(time.RFC3339)
		verifiedAt = &s
	}
	return BikeLogResponse{
		ID:                 l.ID,
		Description:        l.Description,
		BikePhotoURL:       l.BikePhotoURL,
		SafetyGearPhotoURL: l.SafetyGearPhotoURL,
		StartedAt:          l.StartedAt.Format(time.RFC3339),
		CreatedAt:          l.CreatedAt.Format(time.RFC3339),
		VerificationStatus: l.VerificationStatus,
		VerifiedAt:         verifiedAt,
		PointsAwarded:      l.PointsAwarded,
		AdminNotes:         l.AdminNotes,
	}
}

func ToBikeLogResponses(logs []domain.BikeLog) []BikeLogResponse {
	out := make([]BikeLogResponse, len(logs))
	for i, l := range logs {
		out[i] = ToBikeLogResponse(l)
	}
	return out
}

// BikeLogCountResponse reports how many rides were logged today.
type BikeLogCountResponse struct {
	Count int64 `json:"count"`
}
