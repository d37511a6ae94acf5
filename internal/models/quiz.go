package models

import "time"

// Quiz is the database representation of a quiz row. Answers are stored as
// a JSON array in a jsonb column.
type Quiz struct {
	ID              int64     `db:"id"`
	Question        string    `db:"question"`
	Answers         []byte    `db:"answers"`
	CorrectAnswer   string    `db:"correct_answer"`
	Explanation     string    `db:"explanation"`
	HintLink        string    `db:"hint_link"`
	HintDescription string    `db:"hint_description"`
	DisplayDate     time.Time `db:"display_date"`
	QuizType        string    `db:"quiz_type"`
}

// QuizAttempt is the database representation of a quiz attempt row.
type QuizAttempt struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"user_id"`
	QuizID           int64     `db:"quiz_id"`
	Answer           string    `db:"answer"`
	IsCorrect        bool      `db:"is_correct"`
	PointsEarned     int64     `db:"points_earned"`
	ExperienceEarned int64     `db:"experience_earned"`
	CreatedAt        time.Time `db:"created_at"`
}
