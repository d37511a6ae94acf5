// Package seed populates the quiz table on first boot. The app ships with a
// week of road-safety questions so a fresh deployment has content to show.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
)

type seedQuiz struct {
	question        string
	answers         []string
	correctAnswer   string
	explanation     string
	hintDescription string
	quizType        string
	dayOffset       int
}

var seedQuizzes = []seedQuiz{
	{
		question:        "자전거 도로에서의 최고 속도 제한은?",
		answers:         []string{"시속 20km", "시속 30km", "시속 40km", "제한 없음"},
		correctAnswer:   "시속 20km",
		explanation:     "도로교통법에 따르면 자전거도로에서의 최고 속도는 시속 20km입니다.",
		hintDescription: "도로교통법 제19조를 확인해보세요.",
		quizType:        domain.QuizTypeSelect,
		dayOffset:       0,
	},
	{
		question:        "자전거 운전 시 안전모 착용은 의무이다.",
		answers:         []string{"O", "X"},
		correctAnswer:   "O",
		explanation:     "도로교통법 제50조에 따라 자전거 운전 시 인명보호장구(안전모)를 착용해야 합니다.",
		hintDescription: "도로교통법 제50조를 확인해보세요.",
		quizType:        domain.QuizTypeOX,
		dayOffset:       -1,
	},
	{
		question:        "야간에 자전거를 운행할 때 반드시 켜야 하는 것은?",
		answers:         []string{"전조등", "경적", "방향지시등", "비상등"},
		correctAnswer:   "전조등",
		explanation:     "야간에 자전거를 운행할 때는 전조등과 미등을 반드시 켜야 합니다.",
		hintDescription: "야간 자전거 운행 규칙을 확인해보세요.",
		quizType:        domain.QuizTypeSelect,
		dayOffset:       -2,
	},
	{
		question:        "자전거 횡단도의 신호는 (  ) 신호를 따른다.",
		answers:         []string{},
		correctAnswer:   "자전거",
		explanation:     "자전거 횡단도에서는 자전거 신호등이 있는 경우 해당 신호를 따릅니다.",
		hintDescription: "횡단보도와 자전거 횡단도의 차이를 알아보세요.",
		quizType:        domain.QuizTypeInput,
		dayOffset:       -3,
	},
	{
		question:        "자전거 음주운전 적발 시 범칙금은?",
		answers:         []string{"1만원", "3만원", "5만원", "10만원"},
		correctAnswer:   "3만원",
		explanation:     "자전거 음주운전 적발 시 범칙금 3만원이 부과됩니다.",
		hintDescription: "자전거 음주운전 처벌 규정을 확인해보세요.",
		quizType:        domain.QuizTypeSelect,
		dayOffset:       -4,
	},
	{
		question:        "자전거도 도로교통법상 '차'에 해당한다.",
		answers:         []string{"O", "X"},
		correctAnswer:   "O",
		explanation:     "도로교통법 제2조에 따르면 자전거는 '차'에 해당합니다.",
		hintDescription: "도로교통법 제2조 정의를 확인해보세요.",
		quizType:        domain.QuizTypeOX,
		dayOffset:       -5,
	},
	{
		question:        "자전거 운전 중 휴대전화 사용 시 범칙금은?",
		answers:         []string{"1만원", "2만원", "3만원", "5만원"},
		correctAnswer:   "2만원",
		explanation:     "자전거 운전 중 휴대전화를 사용하면 범칙금 2만원이 부과됩니다.",
		hintDescription: "자전거 운전 중 휴대전화 사용 규정을 확인해보세요.",
		quizType:        domain.QuizTypeSelect,
		dayOffset:       -6,
	},
}

// SeedQuizzes inserts the built-in quiz set when the table is empty. It is
// a no-op on an already seeded database.
func SeedQuizzes(ctx context.Context, repo portsrepo.QuizRepository, logger *slog.Logger) error {
	count, err := repo.CountQuizzes(ctx)
	if err != nil {
		return fmt.Errorf("seed: counting quizzes: %w", err)
	}
	if count > 0 {
		return nil
	}

	today := time.Now()
	for _, q := range seedQuizzes {
		displayDate := today.AddDate(0, 0, q.dayOffset).Format("2006-01-02")
		quiz := domain.Quiz{
			Question:        q.question,
			Answers:         q.answers,
			CorrectAnswer:   q.correctAnswer,
			Explanation:     q.explanation,
			HintDescription: q.hintDescription,
			DisplayDate:     displayDate,
			QuizType:        q.quizType,
		}
		if err := repo.SaveQuiz(ctx, quiz); err != nil {
			return fmt.Errorf("seed: inserting quiz %q: %w", q.question, err)
		}
	}

	logger.Info("Seeded quizzes", slog.Int("count", len(seedQuizzes)))
	return nil
}
