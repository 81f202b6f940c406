package repositories

import (
	"context"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OnlineTransactionRepository struct {
	DB *pgxpool.Pool
}

func NewOnlineTransactionRepository(db *pgxpool.Pool) *OnlineTransactionRepository {
	return &OnlineTransactionRepository{DB: db}
}

const onlineTxColumns = `ot.id, ot.razorpay_order_id, COALESCE(ot.razorpay_payment_id, ''),
	 COALESCE(ot.razorpay_signature, ''), ot.tenant_id, COALESCE(t.phone, ''), COALESCE(t.name, ''),
	 ot.payment_id, ot.rental_id, ot.amount, ot.fee_amount, ot.total_amount,
	 COALESCE(ot.payment_method, ''), COALESCE(ot.bank, ''), COALESCE(ot.vpa, ''),
	 COALESCE(ot.card_last4, ''), ot.status, COALESCE(ot.failure_reason, ''),
	 ot.created_at, ot.completed_at`

const onlineTxJoins = ` FROM online_transactions ot
	 LEFT JOIN tenants t ON t.id = ot.tenant_id`

func scanOnlineTx(row interface{ Scan(...any) error }) (*models.OnlineTransaction, error) {
	var ot models.OnlineTransaction
	err := row.Scan(&ot.ID, &ot.RazorpayOrderID, &ot.RazorpayPaymentID, &ot.RazorpaySignature,
		&ot.TenantID, &ot.TenantPhone, &ot.TenantName, &ot.PaymentID, &ot.RentalID,
		&ot.Amount, &ot.FeeAmount, &ot.TotalAmount, &ot.PaymentMethod, &ot.Bank, &ot.VPA,
		&ot.CardLast4, &ot.Status, &ot.FailureReason, &ot.CreatedAt, &ot.CompletedAt)
	return &ot, err
}

func (r *OnlineTransactionRepository) Create(ctx context.Context, ot *models.OnlineTransaction) error {
	if ot.Status == "" {
		ot.Status = models.OnlineTxStatusPending
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO online_transactions(razorpay_order_id, tenant_id, payment_id, rental_id,
		 amount, fee_amount, total_amount, status)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at`,
		ot.RazorpayOrderID, ot.TenantID, ot.PaymentID, ot.RentalID,
		ot.Amount, ot.FeeAmount, ot.TotalAmount, ot.Status,
	).Scan(&ot.ID, &ot.CreatedAt)
}

func (r *OnlineTransactionRepository) GetByOrderID(ctx context.Context, orderID string) (*models.OnlineTransaction, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+onlineTxColumns+onlineTxJoins+` WHERE ot.razorpay_order_id=$1`, orderID)
	return scanOnlineTx(row)
}

func (r *OnlineTransactionRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.OnlineTransaction, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+onlineTxColumns+onlineTxJoins+` WHERE ot.tenant_id=$1 ORDER BY ot.created_at DESC`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*models.OnlineTransaction
	for rows.Next() {
		ot, err := scanOnlineTx(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, ot)
	}
	return txs, nil
}

// MarkSuccess records a verified payment. The status guard makes verification
// idempotent: a second callback for the same order changes nothing.
func (r *OnlineTransactionRepository) MarkSuccess(ctx context.Context, orderID, paymentID, signature, method, bank, vpa, cardLast4 string) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE online_transactions
		 SET status='success', razorpay_payment_id=$1, razorpay_signature=$2,
		     payment_method=$3, bank=$4, vpa=$5, card_last4=$6, completed_at=CURRENT_TIMESTAMP
		 WHERE razorpay_order_id=$7 AND status='pending'`,
		paymentID, signature, method, bank, vpa, cardLast4, orderID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MarkFailed records a failed payment attempt
func (r *OnlineTransactionRepository) MarkFailed(ctx context.Context, orderID, reason string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE online_transactions
		 SET status='failed', failure_reason=$1, completed_at=CURRENT_TIMESTAMP
		 WHERE razorpay_order_id=$2 AND status='pending'`,
		reason, orderID)
	return err
}
