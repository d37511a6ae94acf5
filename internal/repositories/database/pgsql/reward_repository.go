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

type PgxRewardRepository struct {
	BaseRepository
}

func NewRewardRepository(db *pgxpool.Pool) portsrepo.RewardRepository {
	return &PgxRewardRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.RewardRepository = (*PgxRewardRepository)(nil)

func toDomainReward(m models.Reward) domain.Reward {
	return domain.Reward{
		ID:               m.ID,
		UserID:           m.UserID,
		ExperiencePoints: m.ExperiencePoints,
		RewardReason:     m.RewardReason,
		SourceType:       m.SourceType,
		CreatedAt:        m.CreatedAt,
	}
}

// GrantReward performs the three coupled writes of a grant in one
// transaction: ledger append, totals update, level recomputation. The user
// row is locked first so concurrent grants to the same user serialize and
// no update is lost.
func (r *PgxRewardRepository) GrantReward(ctx context.Context, userID int64, amount int64, reason string, source string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	var currentXP int64
	err = tx.QueryRow(ctx, `SELECT experience_points FROM users WHERE id = $1 FOR UPDATE;`, userID).Scan(&currentXP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock user row: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO rewards (user_id, experience_points, reward_reason, source_type, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `, userID, amount, reason, source, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to append reward ledger entry: %w", err)
	}

	newXP := currentXP + amount
	level, levelName := domain.LevelForXP(newXP)

	_, err = tx.Exec(ctx, `
        UPDATE users
        SET experience_points = $1, points = points + $2, level = $3, level_name = $4
        WHERE id = $5;
    `, newXP, amount, level, levelName, userID)
	if err != nil {
		return fmt.Errorf("failed to update user totals: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxRewardRepository) FindRewardsByUser(ctx context.Context, userID int64) ([]domain.Reward, error) {
	query := `
        SELECT id, user_id, experience_points, reward_reason, source_type, created_at
        FROM rewards
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards: %w", err)
	}
	defer rows.Close()

	rewards := []domain.Reward{}
	for rows.Next() {
		var m models.Reward
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.ExperiencePoints,
			&m.RewardReason,
			&m.SourceType,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reward row: %w", err)
		}
		rewards = append(rewards, toDomainReward(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reward rows: %w", rows.Err())
	}

	return rewards, nil
}
