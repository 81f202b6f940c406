package repositories

import (
	"context"
	"time"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RentalRepository struct {
	DB *pgxpool.Pool
}

func NewRentalRepository(db *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{DB: db}
}

const rentalColumns = `r.id, r.property_id, COALESCE(p.title, ''), r.tenant_id, COALESCE(t.name, ''),
	 COALESCE(t.phone, ''), r.start_date, r.end_date, r.monthly_amount, r.status, r.rental_type,
	 COALESCE(r.included_services, ''), r.max_occupants, r.pets_allowed, r.smoking_allowed,
	 COALESCE(r.created_by_user_id, 0), r.created_at, r.updated_at`

const rentalJoins = ` FROM rentals r
	 LEFT JOIN properties p ON p.id = r.property_id
	 LEFT JOIN tenants t ON t.id = r.tenant_id`

func scanRental(row interface{ Scan(...any) error }) (*models.Rental, error) {
	var rn models.Rental
	err := row.Scan(&rn.ID, &rn.PropertyID, &rn.PropertyTitle, &rn.TenantID, &rn.TenantName,
		&rn.TenantPhone, &rn.StartDate, &rn.EndDate, &rn.MonthlyAmount, &rn.Status,
		&rn.RentalType, &rn.IncludedServices, &rn.MaxOccupants, &rn.PetsAllowed,
		&rn.SmokingAllowed, &rn.CreatedByUserID, &rn.CreatedAt, &rn.UpdatedAt)
	return &rn, err
}

func (r *RentalRepository) Create(ctx context.Context, rn *models.Rental) error {
	if rn.Status == "" {
		rn.Status = models.StatusActive
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO rentals(property_id, tenant_id, start_date, end_date, monthly_amount,
		 status, rental_type, included_services, max_occupants, pets_allowed, smoking_allowed,
		 created_by_user_id)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
         RETURNING id, created_at, updated_at`,
		rn.PropertyID, rn.TenantID, rn.StartDate, rn.EndDate, rn.MonthlyAmount,
		rn.Status, rn.RentalType, rn.IncludedServices, rn.MaxOccupants, rn.PetsAllowed,
		rn.SmokingAllowed, rn.CreatedByUserID,
	).Scan(&rn.ID, &rn.CreatedAt, &rn.UpdatedAt)
}

func (r *RentalRepository) Get(ctx context.Context, id int) (*models.Rental, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+rentalColumns+rentalJoins+` WHERE r.id=$1`, id)
	return scanRental(row)
}

func (r *RentalRepository) List(ctx context.Context) ([]*models.Rental, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+rentalColumns+rentalJoins+` ORDER BY r.start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

// ListByProperty returns every contract for a property, oldest first. Used by
// the availability check, which needs the full booking history.
func (r *RentalRepository) ListByProperty(ctx context.Context, propertyID int) ([]*models.Rental, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+rentalColumns+rentalJoins+` WHERE r.property_id=$1 ORDER BY r.start_date`,
		propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *RentalRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Rental, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+rentalColumns+rentalJoins+` WHERE r.tenant_id=$1 ORDER BY r.start_date DESC`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

// ListEndingBetween returns active contracts whose end date falls inside the
// window, inclusive. Used by the renewal-window scan job.
func (r *RentalRepository) ListEndingBetween(ctx context.Context, from, to time.Time) ([]*models.Rental, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+rentalColumns+rentalJoins+`
		 WHERE r.status='active' AND r.end_date BETWEEN $1 AND $2
		 ORDER BY r.end_date`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func collectRentals(rows interface {
	Next() bool
	Scan(...any) error
}) ([]*models.Rental, error) {
	var rentals []*models.Rental
	for rows.Next() {
		rn, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rn)
	}
	return rentals, nil
}

func (r *RentalRepository) Update(ctx context.Context, rn *models.Rental) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE rentals SET start_date=$1, end_date=$2, monthly_amount=$3, rental_type=$4,
		 included_services=$5, max_occupants=$6, pets_allowed=$7, smoking_allowed=$8,
		 updated_at=CURRENT_TIMESTAMP
         WHERE id=$9`,
		rn.StartDate, rn.EndDate, rn.MonthlyAmount, rn.RentalType,
		rn.IncludedServices, rn.MaxOccupants, rn.PetsAllowed, rn.SmokingAllowed, rn.ID)
	return err
}

// UpdateStatus sets the stored status (manual override: terminated/cancelled)
func (r *RentalRepository) UpdateStatus(ctx context.Context, id int, status models.RentalStatus) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE rentals SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		status, id)
	return err
}

// ExtendEndDate pushes the contract end date out, used on renewal approval
func (r *RentalRepository) ExtendEndDate(ctx context.Context, id int, newEnd time.Time) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE rentals SET end_date=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		newEnd, id)
	return err
}
