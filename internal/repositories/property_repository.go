package repositories

import (
	"context"
	"fmt"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	DB *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

const propertyColumns = `p.id, p.title, p.address, p.city, p.property_type, p.bedrooms, p.bathrooms,
	 p.area_sqm, p.sale_price, p.monthly_rent, p.status, COALESCE(p.capturing_agent_id, 0),
	 COALESCE(u.name, ''), COALESCE(p.description, ''), p.created_at, p.updated_at`

func scanProperty(row interface{ Scan(...any) error }) (*models.Property, error) {
	var p models.Property
	err := row.Scan(&p.ID, &p.Title, &p.Address, &p.City, &p.PropertyType, &p.Bedrooms,
		&p.Bathrooms, &p.AreaSqm, &p.SalePrice, &p.MonthlyRent, &p.Status,
		&p.CapturingAgentID, &p.AgentName, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *PropertyRepository) Create(ctx context.Context, p *models.Property) error {
	if p.Status == "" {
		p.Status = models.PropertyAvailable
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO properties(title, address, city, property_type, bedrooms, bathrooms,
		 area_sqm, sale_price, monthly_rent, status, capturing_agent_id, description)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
         RETURNING id, created_at, updated_at`,
		p.Title, p.Address, p.City, p.PropertyType, p.Bedrooms, p.Bathrooms,
		p.AreaSqm, p.SalePrice, p.MonthlyRent, p.Status, p.CapturingAgentID, p.Description,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) Get(ctx context.Context, id int) (*models.Property, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+propertyColumns+`
         FROM properties p
         LEFT JOIN users u ON u.id = p.capturing_agent_id
         WHERE p.id=$1`, id)
	return scanProperty(row)
}

// List returns properties matching the filter. Empty filter fields match everything.
func (r *PropertyRepository) List(ctx context.Context, filter models.PropertyFilter) ([]*models.Property, error) {
	query := `SELECT ` + propertyColumns + `
         FROM properties p
         LEFT JOIN users u ON u.id = p.capturing_agent_id
         WHERE 1=1`
	args := []any{}

	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND p.city=$%d", len(args))
	}
	if filter.PropertyType != "" {
		args = append(args, filter.PropertyType)
		query += fmt.Sprintf(" AND p.property_type=$%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND p.status=$%d", len(args))
	}
	if filter.AgentID != 0 {
		args = append(args, filter.AgentID)
		query += fmt.Sprintf(" AND p.capturing_agent_id=$%d", len(args))
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *models.Property) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE properties SET title=$1, address=$2, city=$3, property_type=$4, bedrooms=$5,
		 bathrooms=$6, area_sqm=$7, sale_price=$8, monthly_rent=$9, status=$10,
		 capturing_agent_id=$11, description=$12, updated_at=CURRENT_TIMESTAMP
         WHERE id=$13`,
		p.Title, p.Address, p.City, p.PropertyType, p.Bedrooms, p.Bathrooms,
		p.AreaSqm, p.SalePrice, p.MonthlyRent, p.Status, p.CapturingAgentID,
		p.Description, p.ID)
	return err
}

// UpdateStatus sets only the listing status
func (r *PropertyRepository) UpdateStatus(ctx context.Context, id int, status models.PropertyStatus) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE properties SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		status, id)
	return err
}

func (r *PropertyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	return err
}
