package dto

import (
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
)

// UserProfileResponse is the authenticated profile view.
type UserProfileResponse struct {
	ID               int64   `json:"id"`
	Username         string  `json:"username"`
	Email            string  `json:"email"`
	ProfileImageURL  *string `json:"profile_image_url"`
	ExperiencePoints int64   `json:"experience_points"`
	Points           int64   `json:"points"`
	Level            int     `json:"level"`
	LevelName        string  `json:"level_name"`
	Benefits         string  `json:"benefits"`
	Description      string  `json:"description"`
	CreatedAt        string  `json:"created_at"`
}

func ToUserProfileResponse(u *domain.User) UserProfileResponse {
	return UserProfileResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		ProfileImageURL:  u.ProfileImageURL,
		ExperiencePoints: u.ExperiencePoints,
		Points:           u.Points,
		Level:            u.Level,
		LevelName:        u.LevelName,
		Benefits:         u.Benefits,
		Description:      u.Description,
		CreatedAt:        u.CreatedAt.Format(time.RFC3339),
	}
}

// RewardResponse is one ledger entry in the rewards listing.
type RewardResponse struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"user_id"`
	ExperiencePoints int64  `json:"experience_points"`
	RewardReason     string `json:"reward_reason"`
	SourceType       string `json:"source_type"`
	CreatedAt        string `json:"created_at"`
}

func ToRewardResponse(r domain.Reward) RewardResponse {
	return RewardResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		ExperiencePoints: r.ExperiencePoints,
		RewardReason:     r.RewardReason,
		SourceType:       r.SourceType,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRewardResponses(rewards []domain.Reward) []RewardResponse {
	out := make([]RewardResponse, len(rewards))
	for i, r := range rewards {
		out[i] = ToRewardResponse(r)
	}
	return out
}

// ScoreUpdateRequest is the manual score adjustment body.
type ScoreUpdateRequest struct {
	ExperiencePoints int64  `json:"experience_points"`
	RewardReason     string `json:"reward_reason" binding:"required"`
}

// LevelResponse is the public level view of a user.
type LevelResponse struct {
	Level            int    `json:"level"`
	LevelName        string `json:"level_name"`
	ExperiencePoints int64  `json:"experience_points"`
}

func ToLevelResponse(u *domain.User) LevelResponse {
	return LevelResponse{
		Level:            u.Level,
		LevelName:        u.LevelName,
		ExperiencePoints: u.ExperiencePoints,
	}
}
