package domain

import "time"

// Reward source categories.
const (
	RewardSourceQuiz    = "quiz"
	RewardSourceManual  = "manual"
	RewardSourceBikeLog = "bike_log"
)

// Reward is an append-only ledger entry. Summing ExperiencePoints over a
// user's entries must always equal that user's current experience total.
type Reward struct {
	ID               int64
	UserID           int64
	ExperiencePoints int64
	RewardReason     string
	SourceType       string
	CreatedAt        time.Time
}
