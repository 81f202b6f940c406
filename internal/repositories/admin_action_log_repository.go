package repositories

import (
	"context"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminActionLogRepository struct {
	DB *pgxpool.Pool
}

func NewAdminActionLogRepository(db *pgxpool.Pool) *AdminActionLogRepository {
	return &AdminActionLogRepository{DB: db}
}

func (r *AdminActionLogRepository) Create(ctx context.Context, l *models.AdminActionLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO admin_action_logs(admin_user_id, action_type, target_type, target_id, description, ip_address)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		l.AdminUserID, l.ActionType, l.TargetType, l.TargetID, l.Description, l.IPAddress,
	).Scan(&l.ID, &l.CreatedAt)
}

// List returns the most recent actions, newest first
func (r *AdminActionLogRepository) List(ctx context.Context, limit int) ([]*models.AdminActionLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.DB.Query(ctx,
		`SELECT id, admin_user_id, action_type, target_type, target_id,
		 COALESCE(description, ''), ip_address, created_at
         FROM admin_action_logs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.AdminActionLog
	for rows.Next() {
		var l models.AdminActionLog
		err := rows.Scan(&l.ID, &l.AdminUserID, &l.ActionType, &l.TargetType, &l.TargetID,
			&l.Description, &l.IPAddress, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, nil
}
