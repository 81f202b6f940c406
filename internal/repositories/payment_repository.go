package repositories

import (
	"context"
	"time"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `pm.id, COALESCE(pm.receipt_number, ''), pm.rental_id, pm.tenant_id,
	 COALESCE(t.name, ''), COALESCE(p.title, ''), pm.due_date, pm.amount, pm.status,
	 pm.paid_date, COALESCE(pm.method, ''), pm.processed_by_user_id, COALESCE(u.name, ''),
	 COALESCE(pm.notes, ''), pm.created_at`

const paymentJoins = ` FROM payments pm
	 LEFT JOIN tenants t ON t.id = pm.tenant_id
	 LEFT JOIN rentals r ON r.id = pm.rental_id
	 LEFT JOIN properties p ON p.id = r.property_id
	 LEFT JOIN users u ON u.id = pm.processed_by_user_id`

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	var pm models.Payment
	err := row.Scan(&pm.ID, &pm.ReceiptNumber, &pm.RentalID, &pm.TenantID, &pm.TenantName,
		&pm.PropertyTitle, &pm.DueDate, &pm.Amount, &pm.Status, &pm.PaidDate, &pm.Method,
		&pm.ProcessedByUserID, &pm.ProcessedByName, &pm.Notes, &pm.CreatedAt)
	return &pm, err
}

func (r *PaymentRepository) Create(ctx context.Context, pm *models.Payment) error {
	if pm.Status == "" {
		pm.Status = models.PaymentPending
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO payments(rental_id, tenant_id, due_date, amount, status, notes)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		pm.RentalID, pm.TenantID, pm.DueDate, pm.Amount, pm.Status, pm.Notes,
	).Scan(&pm.ID, &pm.CreatedAt)
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+paymentColumns+paymentJoins+` WHERE pm.id=$1`, id)
	return scanPayment(row)
}

func (r *PaymentRepository) ListByRental(ctx context.Context, rentalID int) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+paymentJoins+` WHERE pm.rental_id=$1 ORDER BY pm.due_date`,
		rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+paymentJoins+` WHERE pm.tenant_id=$1 ORDER BY pm.due_date DESC`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *PaymentRepository) ListByStatus(ctx context.Context, status models.PaymentStatus) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+paymentJoins+` WHERE pm.status=$1 ORDER BY pm.due_date`,
		status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func collectPayments(rows interface {
	Next() bool
	Scan(...any) error
}) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		pm, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, pm)
	}
	return payments, nil
}

// MarkPaid settles a payment and assigns a receipt number from the sequence.
// Only pending or overdue payments can be settled, and only once.
func (r *PaymentRepository) MarkPaid(ctx context.Context, id int, paidDate time.Time, method string, processedBy *int, notes string) (*models.Payment, error) {
	_, err := r.DB.Exec(ctx,
		`UPDATE payments
		 SET status='paid',
		     receipt_number='RCP-' || nextval('receipt_number_seq'),
		     paid_date=$1, method=$2, processed_by_user_id=$3,
		     notes=CASE WHEN $4 <> '' THEN $4 ELSE notes END
		 WHERE id=$5 AND status IN ('pending', 'overdue')`,
		paidDate, method, processedBy, notes, id)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// MarkOverdueBefore flips pending payments past their due date to overdue and
// returns how many rows changed. Run nightly by the scheduler.
func (r *PaymentRepository) MarkOverdueBefore(ctx context.Context, today time.Time) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE payments SET status='overdue' WHERE status='pending' AND due_date < $1`,
		today)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM payments WHERE id=$1 AND status <> 'paid'`, id)
	return err
}
