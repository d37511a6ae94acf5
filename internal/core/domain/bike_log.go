package domain

import "time"

// Bike log verification states.
const (
	BikeLogStatusPending  = "pending"
	BikeLogStatusVerified = "verified"
	BikeLogStatusRejected = "rejected"
)

// BikeLog is a ride record submitted by a user for verification. Photo
// persistence is handled by an external upload collaborator; only the
// resulting URLs are stored here.
type BikeLog struct {
	ID                 int64
	UserID             int64
	Description        string
	BikePhotoURL       string
	SafetyGearPhotoURL string
	StartedAt          time.Time
	CreatedAt          time.Time
	VerificationStatus string
	VerifiedAt         *time.Time
	PointsAwarded      int64
	AdminNotes         *string
}
