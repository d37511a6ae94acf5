package domain

import "time"

// Quiz kinds as stored in quizzes.quiz_type.
const (
	QuizTypeSelect = "select"
	QuizTypeOX     = "ox"
	QuizTypeInput  = "input"
)

// Quiz is a daily road-safety question. Read-only to the gameplay core;
// rows are written by the seeder.
type Quiz struct {
	ID              int64
	Question        string
	Answers         []string // empty for free-text questions
	CorrectAnswer   string
	Explanation     string
	HintLink        string
	HintDescription string
	DisplayDate     string // calendar date, formatted 2006-01-02
	QuizType        string
}

// QuizAttempt is an immutable record of one submission. A user may attempt
// the same quiz more than once; every attempt gets its own row.
type QuizAttempt struct {
	ID               int64
	UserID           int64
	QuizID           int64
	Answer           string
	IsCorrect        bool
	PointsEarned     int64
	ExperienceEarned int64
	CreatedAt        time.Time
}

// QuizAttemptResult is the outcome reported back to the caller of an attempt.
type QuizAttemptResult struct {
	IsCorrect        bool
	PointsEarned     int64
	ExperienceEarned int64
	RewardGiven      bool
}
