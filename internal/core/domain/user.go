package domain

import "time"

// User is the single mutable aggregate of the points engine. Experience,
// points, level and level name are only ever changed together inside a
// reward grant; everything else is written once at registration.
type User struct {
	ID               int64
	KakaoID          string
	Username         string
	Email            string
	ProfileImageURL  *string
	ExperiencePoints int64
	Points           int64
	Level            int
	LevelName        string
	Benefits         string
	Description      string
	CreatedAt        time.Time
}

// KakaoUserInfo is the external identity returned by the Kakao profile endpoint.
type KakaoUserInfo struct {
	KakaoID      string
	Nickname     string
	Email        string
	ProfileImage *string
}
