package repositories

import (
	"context"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LeadRepository struct {
	DB *pgxpool.Pool
}

func NewLeadRepository(db *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `l.id, l.name, l.phone, COALESCE(l.email, ''), l.interest, l.property_id,
	 COALESCE(p.title, ''), l.assigned_agent_id, COALESCE(u.name, ''), l.status,
	 COALESCE(l.notes, ''), l.created_at, l.updated_at`

const leadJoins = ` FROM leads l
	 LEFT JOIN properties p ON p.id = l.property_id
	 LEFT JOIN users u ON u.id = l.assigned_agent_id`

func scanLead(row interface{ Scan(...any) error }) (*models.Lead, error) {
	var l models.Lead
	err := row.Scan(&l.ID, &l.Name, &l.Phone, &l.Email, &l.Interest, &l.PropertyID,
		&l.PropertyTitle, &l.AssignedAgentID, &l.AssignedAgentName, &l.Status,
		&l.Notes, &l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *LeadRepository) Create(ctx context.Context, l *models.Lead) error {
	if l.Status == "" {
		l.Status = models.LeadNew
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO leads(name, phone, email, interest, property_id, status, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		l.Name, l.Phone, l.Email, l.Interest, l.PropertyID, l.Status, l.Notes,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *LeadRepository) Get(ctx context.Context, id int) (*models.Lead, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+leadColumns+leadJoins+` WHERE l.id=$1`, id)
	return scanLead(row)
}

// List returns leads, optionally filtered by status or assigned agent
func (r *LeadRepository) List(ctx context.Context, status string, agentID int) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + leadJoins + ` WHERE 1=1`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += ` AND l.status=$1`
	}
	if agentID != 0 {
		args = append(args, agentID)
		if len(args) == 1 {
			query += ` AND l.assigned_agent_id=$1`
		} else {
			query += ` AND l.assigned_agent_id=$2`
		}
	}
	query += ` ORDER BY l.created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func (r *LeadRepository) Update(ctx context.Context, l *models.Lead) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE leads SET name=$1, phone=$2, email=$3, interest=$4, property_id=$5,
		 status=$6, notes=$7, updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		l.Name, l.Phone, l.Email, l.Interest, l.PropertyID, l.Status, l.Notes, l.ID)
	return err
}

// Assign hands a lead to an agent
func (r *LeadRepository) Assign(ctx context.Context, leadID, agentID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE leads SET assigned_agent_id=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		agentID, leadID)
	return err
}

func (r *LeadRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM leads WHERE id=$1`, id)
	return err
}
