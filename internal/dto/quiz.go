package dto

import "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"

// QuizResponse is one quiz in the listing. The correct answer is included
// because the frontend reveals it with the explanation after an attempt.
type QuizResponse struct {
	ID              int64    `json:"id"`
	Question        string   `json:"question"`
	Answers         []string `json:"answers"`
	CorrectAnswer   string   `json:"correct_answer"`
	Explanation     string   `json:"explanation"`
	HintLink        string   `json:"hint_link"`
	HintDescription string   `json:"hint_description"`
	DisplayDate     string   `json:"display_date"`
	QuizType        string   `json:"quiz_type"`
}

func ToQuizResponse(q domain.Quiz) QuizResponse {
	answers := q.Answers
	if answers == nil {
		answers = []string{}
	}
	return QuizResponse{
		ID:              q.ID,
		Question:        q.Question,
		Answers:         answers,
		CorrectAnswer:   q.CorrectAnswer,
		Explanation:     q.Explanation,
		HintLink:        q.HintLink,
		HintDescription: q.HintDescription,
		DisplayDate:     q.DisplayDate,
		QuizType:        q.QuizType,
	}
}

func ToQuizResponses(quizzes []domain.Quiz) []QuizResponse {
	out := make([]QuizResponse, len(quizzes))
	for i, q := range quizzes {
		out[i] = ToQuizResponse(q)
	}
	return out
}

// QuizAttemptRequest is the submitted answer body.
type QuizAttemptRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// QuizAttemptResponse reports the outcome of one attempt.
type QuizAttemptResponse struct {
	IsCorrect        bool  `json:"is_correct"`
	PointsEarned     int64 `json:"points_earned"`
	ExperienceEarned int64 `json:"experience_earned"`
	RewardGiven      bool  `json:"reward_given"`
}

func ToQuizAttemptResponse(r *domain.QuizAttemptResult) QuizAttemptResponse {
	return QuizAttemptResponse{
		IsCorrect:        r.IsCorrect,
		PointsEarned:     r.PointsEarned,
		ExperienceEarned: r.ExperienceEarned,
		RewardGiven:      r.RewardGiven,
	}
}

// QuizStatusResponse reports whether the caller already attempted today's quiz.
type QuizStatusResponse struct {
	Attempted bool `json:"attempted"`
	IsCorrect bool `json:"is_correct"`
}
