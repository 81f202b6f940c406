package repositories

import (
	"context"
	"strconv"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SystemSettingRepository struct {
	DB *pgxpool.Pool
}

func NewSystemSettingRepository(db *pgxpool.Pool) *SystemSettingRepository {
	return &SystemSettingRepository{DB: db}
}

func (r *SystemSettingRepository) Get(ctx context.Context, key string) (*models.SystemSetting, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, setting_key, setting_value, COALESCE(description, ''), updated_at,
		 COALESCE(updated_by_user_id, 0)
         FROM system_settings WHERE setting_key=$1`, key)

	var s models.SystemSetting
	err := row.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description,
		&s.UpdatedAt, &s.UpdatedByUserID)
	return &s, err
}

// GetInt reads a setting and parses it as an integer, falling back to def
// when the setting is missing or malformed
func (r *SystemSettingRepository) GetInt(ctx context.Context, key string, def int) int {
	s, err := r.Get(ctx, key)
	if err != nil {
		return def
	}
	n, err := strconv.Atoi(s.SettingValue)
	if err != nil {
		return def
	}
	return n
}

// GetFloat reads a setting and parses it as a float, falling back to def
func (r *SystemSettingRepository) GetFloat(ctx context.Context, key string, def float64) float64 {
	s, err := r.Get(ctx, key)
	if err != nil {
		return def
	}
	f, err := strconv.ParseFloat(s.SettingValue, 64)
	if err != nil {
		return def
	}
	return f
}

// GetBool reads a setting as a boolean, falling back to def
func (r *SystemSettingRepository) GetBool(ctx context.Context, key string, def bool) bool {
	s, err := r.Get(ctx, key)
	if err != nil {
		return def
	}
	b, err := strconv.ParseBool(s.SettingValue)
	if err != nil {
		return def
	}
	return b
}

func (r *SystemSettingRepository) List(ctx context.Context) ([]*models.SystemSetting, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, setting_key, setting_value, COALESCE(description, ''), updated_at,
		 COALESCE(updated_by_user_id, 0)
         FROM system_settings ORDER BY setting_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.SystemSetting
	for rows.Next() {
		var s models.SystemSetting
		err := rows.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description,
			&s.UpdatedAt, &s.UpdatedByUserID)
		if err != nil {
			return nil, err
		}
		settings = append(settings, &s)
	}
	return settings, nil
}

func (r *SystemSettingRepository) Update(ctx context.Context, key, value string, updatedBy int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE system_settings SET setting_value=$1, updated_by_user_id=$2, updated_at=CURRENT_TIMESTAMP
         WHERE setting_key=$3`,
		value, updatedBy, key)
	return err
}
