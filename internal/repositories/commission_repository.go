package repositories

import (
	"context"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommissionRepository struct {
	DB *pgxpool.Pool
}

func NewCommissionRepository(db *pgxpool.Pool) *CommissionRepository {
	return &CommissionRepository{DB: db}
}

const commissionColumns = `c.id, c.property_id, COALESCE(p.title, ''), c.sale_price, c.total_rate,
	 c.capturing_agent_id, c.selling_agent_id, c.capturing_share, c.selling_share,
	 c.status, c.paid_at, c.created_at`

const commissionJoins = ` FROM commissions c
	 LEFT JOIN properties p ON p.id = c.property_id`

func scanCommission(row interface{ Scan(...any) error }) (*models.Commission, error) {
	var c models.Commission
	err := row.Scan(&c.ID, &c.PropertyID, &c.PropertyTitle, &c.SalePrice, &c.TotalRate,
		&c.CapturingAgentID, &c.SellingAgentID, &c.CapturingShare, &c.SellingShare,
		&c.Status, &c.PaidAt, &c.CreatedAt)
	return &c, err
}

func (r *CommissionRepository) Create(ctx context.Context, c *models.Commission) error {
	if c.Status == "" {
		c.Status = models.CommissionPending
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO commissions(property_id, sale_price, total_rate, capturing_agent_id,
		 selling_agent_id, capturing_share, selling_share, status)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at`,
		c.PropertyID, c.SalePrice, c.TotalRate, c.CapturingAgentID,
		c.SellingAgentID, c.CapturingShare, c.SellingShare, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *CommissionRepository) Get(ctx context.Context, id int) (*models.Commission, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+commissionColumns+commissionJoins+` WHERE c.id=$1`, id)
	return scanCommission(row)
}

func (r *CommissionRepository) List(ctx context.Context) ([]*models.Commission, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+commissionColumns+commissionJoins+` ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCommissions(rows)
}

// ListByAgent returns commissions where the agent captured or sold
func (r *CommissionRepository) ListByAgent(ctx context.Context, agentID int) ([]*models.Commission, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+commissionColumns+commissionJoins+`
		 WHERE c.capturing_agent_id=$1 OR c.selling_agent_id=$1
		 ORDER BY c.created_at DESC`,
		agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCommissions(rows)
}

func collectCommissions(rows interface {
	Next() bool
	Scan(...any) error
}) ([]*models.Commission, error) {
	var commissions []*models.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, err
		}
		commissions = append(commissions, c)
	}
	return commissions, nil
}

// MarkPaid settles a commission payout
func (r *CommissionRepository) MarkPaid(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE commissions SET status='paid', paid_at=CURRENT_TIMESTAMP
		 WHERE id=$1 AND status='pending'`, id)
	return err
}

func (r *CommissionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM commissions WHERE id=$1 AND status='pending'`, id)
	return err
}
