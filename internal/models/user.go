package models

import "time"

// User is the database representation of a user row.
type User struct {
	ID               int64     `db:"id"`
	KakaoID          string    `db:"kakao_id"`
	Username         string    `db:"username"`
	Email            string    `db:"email"`
	ProfileImageURL  *string   `db:"profile_image_url"`
	ExperiencePoints int64     `db:"experience_points"`
	Points           int64     `db:"points"`
	Level            int       `db:"level"`
	LevelName        string    `db:"level_name"`
	Benefits         string    `db:"benefits"`
	Description      string    `db:"description"`
	CreatedAt        time.Time `db:"created_at"`
}
