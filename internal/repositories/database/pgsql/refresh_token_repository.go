package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/apperrors"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRefreshTokenRepository struct {
	db *pgxpool.Pool
}

func NewRefreshTokenRepository(db *pgxpool.Pool) portsrepo.RefreshTokenRepository {
	return &PgxRefreshTokenRepository{db: db}
}

var _ portsrepo.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

func toDomainRefreshToken(m models.RefreshToken) domain.RefreshToken {
	return domain.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PgxRefreshTokenRepository) SaveRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	query := `
        INSERT INTO refresh_tokens (user_id, token_hash, expires_at, created_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, userID, tokenHash, expiresAt, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) FindByUserAndHash(ctx context.Context, userID int64, tokenHash string) (*domain.RefreshToken, error) {
	query := `
        SELECT id, user_id, token_hash, expires_at, created_at
        FROM refresh_tokens
        WHERE user_id = $1 AND token_hash = $2;
    `
	var m models.RefreshToken
	err := r.db.QueryRow(ctx, query, userID, tokenHash).Scan(
		&m.ID,
		&m.UserID,
		&m.TokenHash,
		&m.ExpiresAt,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	token := toDomainRefreshToken(m)
	return &token, nil
}

func (r *PgxRefreshTokenRepository) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1;`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete refresh tokens for user %d: %w", userID, err)
	}
	return cmdTag.RowsAffected(), nil
}
