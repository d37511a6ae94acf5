package pgsql

import (
	"context"
	"fmt"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	portsrepo "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/repositories"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBikeLogRepository struct {
	db *pgxpool.Pool
}

func NewBikeLogRepository(db *pgxpool.Pool) portsrepo.BikeLogRepository {
	return &PgxBikeLogRepository{db: db}
}

var _ portsrepo.BikeLogRepository = (*PgxBikeLogRepository)(nil)

func toDomainBikeLog(m models.BikeLog) domain.BikeLog {
	return domain.BikeLog{
		ID:                 m.ID,
		UserID:             m.UserID,
		Description:        m.Description,
		BikePhotoURL:       m.BikePhotoURL,
		SafetyGearPhotoURL: m.SafetyGearPhotoURL,
		StartedAt:          m.StartedAt,
		CreatedAt:          m.CreatedAt,
		VerificationStatus: m.VerificationStatus,
		VerifiedAt:         m.VerifiedAt,
		PointsAwarded:      m.PointsAwarded,
		AdminNotes:         m.AdminNotes,
	}
}

const bikeLogColumns = `id, user_id, description, bike_photo_url, safety_gear_photo_url, started_at, created_at, verification_status, verified_at, points_awarded, admin_notes`

func (r *PgxBikeLogRepository) SaveBikeLog(ctx context.Context, log domain.BikeLog) (*domain.BikeLog, error) {
	query := `
        INSERT INTO bike_logs (user_id, description, bike_photo_url, safety_gear_photo_url, started_at, created_at, verification_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + bikeLogColumns + `;
    `
	var m models.BikeLog
	err := r.db.QueryRow(ctx, query,
		log.UserID,
		log.Description,
		log.BikePhotoURL,
		log.SafetyGearPhotoURL,
		log.StartedAt,
		log.CreatedAt,
		log.VerificationStatus,
	).Scan(
		&m.ID,
		&m.UserID,
		&m.Description,
		&m.BikePhotoURL,
		&m.SafetyGearPhotoURL,
		&m.StartedAt,
		&m.CreatedAt,
		&m.VerificationStatus,
		&m.VerifiedAt,
		&m.PointsAwarded,
		&m.AdminNotes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save bike log: %w", err)
	}
	created := toDomainBikeLog(m)
	return &created, nil
}

func (r *PgxBikeLogRepository) FindBikeLogsByUser(ctx context.Context, userID int64) ([]domain.BikeLog, error) {
	query := `SELECT ` + bikeLogColumns + ` FROM bike_logs WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bike logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.BikeLog{}
	for rows.Next() {
		var m models.BikeLog
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Description,
			&m.BikePhotoURL,
			&m.SafetyGearPhotoURL,
			&m.StartedAt,
			&m.CreatedAt,
			&m.VerificationStatus,
			&m.VerifiedAt,
			&m.PointsAwarded,
			&m.AdminNotes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bike log row: %w", err)
		}
		logs = append(logs, toDomainBikeLog(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bike log rows: %w", rows.Err())
	}

	return logs, nil
}

func (r *PgxBikeLogRepository) CountBikeLogsForDate(ctx context.Context, userID int64, date string) (int64, error) {
	query := `SELECT COUNT(*) FROM bike_logs WHERE user_id = $1 AND created_at::date = $2::date;`
	var count int64
	if err := r.db.QueryRow(ctx, query, userID, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bike logs: %w", err)
	}
	return count, nil
}
