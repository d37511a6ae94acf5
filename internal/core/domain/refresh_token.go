package domain

import "time"

// RefreshToken is the server-side record of an issued refresh token. Only a
// SHA-256 hash of the token string is stored; the raw token lives with the
// client. Multiple rows per user are allowed (multi-device).
type RefreshToken struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
