package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxQuizRepository struct {
	db *pgxpool.Pool
}

func NewQuizRepository(db *pgxpool.Pool) portsrepo.QuizRepository {
	return &PgxQuizRepository{db: db}
}

var _ portsrepo.QuizRepository = (*PgxQuizRepository)(nil)

func toDomainQuiz(m models.Quiz) (domain.Quiz, error) {
	answers := []string{}
	if len(m.Answers) > 0 {
		if err := json.Unmarshal(m.Answers, &answers); err != nil {
			return domain.Quiz{}, fmt.Errorf("failed to decode quiz answers: %w", err)
		}
	}
	return domain.Quiz{
		ID:              m.ID,
		Question:        m.Question,
		Answers:         answers,
		CorrectAnswer:   m.CorrectAnswer,
		Explanation:     m.Explanation,
		HintLink:        m.HintLink,
		HintDescription: m.HintDescription,
		DisplayDate:     m.DisplayDate.Format("2006-01-02"),
		QuizType:        m.QuizType,
	}, nil
}

const quizColumns = `id, question, answers, correct_answer, explanation, hint_link, hint_description, display_date, quiz_type`

func scanQuiz(row pgx.Row) (*models.Quiz, error) {
	var m models.Quiz
	err := row.Scan(
		&m.ID,
		&m.Question,
		&m.Answers,
		&m.CorrectAnswer,
		&m.Explanation,
		&m.HintLink,
		&m.HintDescription,
		&m.DisplayDate,
		&m.QuizType,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxQuizRepository) FindQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes ORDER BY display_date DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []domain.Quiz{}
	for rows.Next() {
		var m models.Quiz
		err := rows.Scan(
			&m.ID,
			&m.Question,
			&m.Answers,
			&m.CorrectAnswer,
			&m.Explanation,
			&m.HintLink,
			&m.HintDescription,
			&m.DisplayDate,
			&m.QuizType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz row: %w", err)
		}
		quiz, err := toDomainQuiz(m)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating quiz rows: %w", rows.Err())
	}

	return quizzes, nil
}

func (r *PgxQuizRepository) FindQuizByID(ctx context.Context, quizID int64) (*domain.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1;`
	m, err := scanQuiz(r.db.QueryRow(ctx, query, quizID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quiz by ID %d: %w", quizID, err)
	}
	quiz, err := toDomainQuiz(*m)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *PgxQuizRepository) FindQuizByDisplayDate(ctx context.Context, date string) (*domain.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE display_date = $1::date;`
	m, err := scanQuiz(r.db.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quiz for date %s: %w", date, err)
	}
	quiz, err := toDomainQuiz(*m)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *PgxQuizRepository) SaveAttempt(ctx context.Context, attempt domain.QuizAttempt) error {
	query := `
        INSERT INTO quiz_attempts (user_id, quiz_id, answer, is_correct, points_earned, experience_earned, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		attempt.UserID,
		attempt.QuizID,
		attempt.Answer,
		attempt.IsCorrect,
		attempt.PointsEarned,
		attempt.ExperienceEarned,
		attempt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz attempt: %w", err)
	}
	return nil
}

func (r *PgxQuizRepository) FindLatestAttempt(ctx context.Context, userID, quizID int64) (*domain.QuizAttempt, error) {
	query := `
        SELECT id, user_id, quiz_id, answer, is_correct, points_earned, experience_earned, created_at
        FROM quiz_attempts
        WHERE user_id = $1 AND quiz_id = $2
        ORDER BY created_at DESC
        LIMIT 1;
    `
	var m models.QuizAttempt
	err := r.db.QueryRow(ctx, query, userID, quizID).Scan(
		&m.ID,
		&m.UserID,
		&m.QuizID,
		&m.Answer,
		&m.IsCorrect,
		&m.PointsEarned,
		&m.ExperienceEarned,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest attempt: %w", err)
	}

	return &domain.QuizAttempt{
		ID:               m.ID,
		UserID:           m.UserID,
		QuizID:           m.QuizID,
		Answer:           m.Answer,
		IsCorrect:        m.IsCorrect,
		PointsEarned:     m.PointsEarned,
		ExperienceEarned: m.ExperienceEarned,
		CreatedAt:        m.CreatedAt,
	}, nil
}

func (r *PgxQuizRepository) CountQuizzes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM quizzes;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quizzes: %w", err)
	}
	return count, nil
}

func (r *PgxQuizRepository) SaveQuiz(ctx context.Context, quiz domain.Quiz) error {
	answers, err := json.Marshal(quiz.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode quiz answers: %w", err)
	}
	query := `
        INSERT INTO quizzes (question, answers, correct_answer, explanation, hint_link, hint_description, display_date, quiz_type)
        VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8);
    `
	_, err = r.db.Exec(ctx, query,
		quiz.Question,
		answers,
		quiz.CorrectAnswer,
		quiz.Explanation,
		quiz.HintLink,
		quiz.HintDescription,
		quiz.DisplayDate,
		quiz.QuizType,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}
	return nil
}
