package models

import "time"

// Reward is the database representation of a reward ledger row.
type Reward struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"user_id"`
	ExperiencePoints int64     `db:"experience_points"`
	RewardReason     string    `db:"reward_reason"`
	SourceType       string    `db:"source_type"`
	CreatedAt        time.Time `db:"created_at"`
}
