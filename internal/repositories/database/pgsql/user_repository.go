package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) domain.User {
	return domain.User{
		ID:               m.ID,
		KakaoID:          m.KakaoID,
		Username:         m.Username,
		Email:            m.Email,
		ProfileImageURL:  m.ProfileImageURL,
		ExperiencePoints: m.ExperiencePoints,
		Points:           m.Points,
		Level:            m.Level,
		LevelName:        m.LevelName,
		Benefits:         m.Benefits,
		Description:      m.Description,
		CreatedAt:        m.CreatedAt,
	}
}

const userColumns = `id, kakao_id, username, email, profile_image_url, experience_points, points, level, level_name, benefits, description, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.ID,
		&m.KakaoID,
		&m.Username,
		&m.Email,
		&m.ProfileImageURL,
		&m.ExperiencePoints,
		&m.Points,
		&m.Level,
		&m.LevelName,
		&m.Benefits,
		&m.Description,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (kakao_id, username, email, profile_image_url, level, level_name, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + userColumns + `;
    `
	m, err := scanUser(r.db.QueryRow(ctx, query,
		user.KakaoID,
		user.Username,
		user.Email,
		user.ProfileImageURL,
		user.Level,
		user.LevelName,
		user.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	created := toDomainUser(*m)
	return &created, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}
	user := toDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByKakaoID(ctx context.Context, kakaoID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE kakao_id = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, kakaoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by kakao id: %w", err)
	}
	user := toDomainUser(*m)
	return &user, nil
}
