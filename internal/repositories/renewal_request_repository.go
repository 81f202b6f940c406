package repositories

import (
	"context"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RenewalRequestRepository struct {
	DB *pgxpool.Pool
}

func NewRenewalRequestRepository(db *pgxpool.Pool) *RenewalRequestRepository {
	return &RenewalRequestRepository{DB: db}
}

const renewalColumns = `rr.id, rr.rental_id, rr.tenant_id, COALESCE(t.name, ''), COALESCE(p.title, ''),
	 rr.months, rr.proposed_amount, rr.status, COALESCE(rr.admin_response, ''),
	 rr.decided_by_user_id, rr.created_at, rr.updated_at`

const renewalJoins = ` FROM renewal_requests rr
	 LEFT JOIN tenants t ON t.id = rr.tenant_id
	 LEFT JOIN rentals r ON r.id = rr.rental_id
	 LEFT JOIN properties p ON p.id = r.property_id`

func scanRenewal(row interface{ Scan(...any) error }) (*models.RenewalRequest, error) {
	var rr models.RenewalRequest
	err := row.Scan(&rr.ID, &rr.RentalID, &rr.TenantID, &rr.TenantName, &rr.PropertyTitle,
		&rr.Months, &rr.ProposedAmount, &rr.Status, &rr.AdminResponse,
		&rr.DecidedByUserID, &rr.CreatedAt, &rr.UpdatedAt)
	return &rr, err
}

// Create inserts a new pending request. The partial unique index on
// (rental_id) WHERE status='pending' rejects a second pending request for the
// same rental at the database level.
func (r *RenewalRequestRepository) Create(ctx context.Context, rr *models.RenewalRequest) error {
	rr.Status = models.RenewalPending
	return r.DB.QueryRow(ctx,
		`INSERT INTO renewal_requests(rental_id, tenant_id, months, proposed_amount, status)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		rr.RentalID, rr.TenantID, rr.Months, rr.ProposedAmount, rr.Status,
	).Scan(&rr.ID, &rr.CreatedAt, &rr.UpdatedAt)
}

func (r *RenewalRequestRepository) Get(ctx context.Context, id int) (*models.RenewalRequest, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+renewalColumns+renewalJoins+` WHERE rr.id=$1`, id)
	return scanRenewal(row)
}

func (r *RenewalRequestRepository) List(ctx context.Context) ([]*models.RenewalRequest, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+renewalColumns+renewalJoins+` ORDER BY rr.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRenewals(rows)
}

func (r *RenewalRequestRepository) ListPending(ctx context.Context) ([]*models.RenewalRequest, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+renewalColumns+renewalJoins+` WHERE rr.status='pending' ORDER BY rr.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRenewals(rows)
}

func (r *RenewalRequestRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.RenewalRequest, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+renewalColumns+renewalJoins+` WHERE rr.tenant_id=$1 ORDER BY rr.created_at DESC`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRenewals(rows)
}

func collectRenewals(rows interface {
	Next() bool
	Scan(...any) error
}) ([]*models.RenewalRequest, error) {
	var requests []*models.RenewalRequest
	for rows.Next() {
		rr, err := scanRenewal(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, rr)
	}
	return requests, nil
}

// HasPending reports whether the rental already has a pending request
func (r *RenewalRequestRepository) HasPending(ctx context.Context, rentalID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM renewal_requests WHERE rental_id=$1 AND status='pending')`,
		rentalID).Scan(&exists)
	return exists, err
}

// Decide moves a pending request to approved or rejected. Returns the number
// of rows changed so callers can detect an already-decided request.
func (r *RenewalRequestRepository) Decide(ctx context.Context, id int, status models.RenewalStatus, response string, decidedBy int) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE renewal_requests
		 SET status=$1, admin_response=$2, decided_by_user_id=$3, updated_at=CURRENT_TIMESTAMP
		 WHERE id=$4 AND status='pending'`,
		status, response, decidedBy, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Cancel lets the requesting tenant withdraw a pending request
func (r *RenewalRequestRepository) Cancel(ctx context.Context, id, tenantID int) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE renewal_requests SET status='cancelled', updated_at=CURRENT_TIMESTAMP
		 WHERE id=$1 AND tenant_id=$2 AND status='pending'`,
		id, tenantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
