package models

import "time"

// BikeLog is the database representation of a bike log row.
type BikeLog struct {
	ID                 int64      `db:"id"`
	UserID             int64      `db:"user_id"`
	Description        string     `db:"description"`
	BikePhotoURL       string     `db:"bike_photo_url"`
	SafetyGearPhotoURL string     `db:"safety_gear_photo_url"`
	StartedAt          time.Time  `db:"started_at"`
	CreatedAt          time.Time  `db:"created_at"`
	VerificationStatus string     `db:"verification_status"`
	VerifiedAt         *time.Time `db:"verified_at"`
	PointsAwarded      int64      `db:"points_awarded"`
	AdminNotes         *string    `db:"admin_notes"`
}
