package repositories

import (
	"context"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TenantRepository struct {
	DB *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{DB: db}
}

func (r *TenantRepository) Create(ctx context.Context, t *models.Tenant) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO tenants(name, phone, email, id_number, password_hash)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		t.Name, t.Phone, t.Email, t.IDNumber, t.PasswordHash,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TenantRepository) Get(ctx context.Context, id int) (*models.Tenant, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, phone, COALESCE(email, ''), COALESCE(id_number, ''), password_hash, created_at, updated_at
         FROM tenants WHERE id=$1`, id)

	var t models.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.Phone, &t.Email, &t.IDNumber, &t.PasswordHash,
		&t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *TenantRepository) GetByPhone(ctx context.Context, phone string) (*models.Tenant, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, phone, COALESCE(email, ''), COALESCE(id_number, ''), password_hash, created_at, updated_at
         FROM tenants WHERE phone=$1`, phone)

	var t models.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.Phone, &t.Email, &t.IDNumber, &t.PasswordHash,
		&t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *TenantRepository) List(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, phone, COALESCE(email, ''), COALESCE(id_number, ''), created_at, updated_at
         FROM tenants ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		var t models.Tenant
		err := rows.Scan(&t.ID, &t.Name, &t.Phone, &t.Email, &t.IDNumber,
			&t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, &t)
	}
	return tenants, nil
}

func (r *TenantRepository) Update(ctx context.Context, t *models.Tenant) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE tenants SET name=$1, phone=$2, email=$3, id_number=$4, updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		t.Name, t.Phone, t.Email, t.IDNumber, t.ID)
	return err
}

// UpdatePassword replaces the stored password hash
func (r *TenantRepository) UpdatePassword(ctx context.Context, tenantID int, passwordHash string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE tenants SET password_hash=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		passwordHash, tenantID)
	return err
}

func (r *TenantRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM tenants WHERE id=$1`, id)
	return err
}
