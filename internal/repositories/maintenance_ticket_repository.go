package repositories

import (
	"context"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaintenanceTicketRepository struct {
	DB *pgxpool.Pool
}

func NewMaintenanceTicketRepository(db *pgxpool.Pool) *MaintenanceTicketRepository {
	return &MaintenanceTicketRepository{DB: db}
}

const ticketColumns = `mt.id, mt.property_id, COALESCE(p.title, ''), mt.rental_id, mt.reported_by_tenant,
	 COALESCE(t.name, ''), mt.title, COALESCE(mt.description, ''), mt.priority, mt.status,
	 mt.assigned_to_user_id, mt.resolved_at, mt.created_at, mt.updated_at`

const ticketJoins = ` FROM maintenance_tickets mt
	 LEFT JOIN properties p ON p.id = mt.property_id
	 LEFT JOIN tenants t ON t.id = mt.reported_by_tenant`

func scanTicket(row interface{ Scan(...any) error }) (*models.MaintenanceTicket, error) {
	var mt models.MaintenanceTicket
	err := row.Scan(&mt.ID, &mt.PropertyID, &mt.PropertyTitle, &mt.RentalID, &mt.ReportedByTenant,
		&mt.ReporterName, &mt.Title, &mt.Description, &mt.Priority, &mt.Status,
		&mt.AssignedToUserID, &mt.ResolvedAt, &mt.CreatedAt, &mt.UpdatedAt)
	return &mt, err
}

func (r *MaintenanceTicketRepository) Create(ctx context.Context, mt *models.MaintenanceTicket) error {
	if mt.Priority == "" {
		mt.Priority = models.PriorityMedium
	}
	mt.Status = models.TicketOpen
	return r.DB.QueryRow(ctx,
		`INSERT INTO maintenance_tickets(property_id, rental_id, reported_by_tenant, title,
		 description, priority, status)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		mt.PropertyID, mt.RentalID, mt.ReportedByTenant, mt.Title,
		mt.Description, mt.Priority, mt.Status,
	).Scan(&mt.ID, &mt.CreatedAt, &mt.UpdatedAt)
}

func (r *MaintenanceTicketRepository) Get(ctx context.Context, id int) (*models.MaintenanceTicket, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+ticketColumns+ticketJoins+` WHERE mt.id=$1`, id)
	return scanTicket(row)
}

func (r *MaintenanceTicketRepository) List(ctx context.Context, status string) ([]*models.MaintenanceTicket, error) {
	query := `SELECT ` + ticketColumns + ticketJoins
	args := []any{}
	if status != "" {
		query += ` WHERE mt.status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY mt.created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r *MaintenanceTicketRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.MaintenanceTicket, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+ticketColumns+ticketJoins+` WHERE mt.reported_by_tenant=$1 ORDER BY mt.created_at DESC`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func collectTickets(rows interface {
	Next() bool
	Scan(...any) error
}) ([]*models.MaintenanceTicket, error) {
	var tickets []*models.MaintenanceTicket
	for rows.Next() {
		mt, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, mt)
	}
	return tickets, nil
}

// UpdateStatus moves a ticket along its pipeline, stamping resolved_at when it
// reaches resolved
func (r *MaintenanceTicketRepository) UpdateStatus(ctx context.Context, id int, status models.TicketStatus, assignedTo *int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE maintenance_tickets
		 SET status=$1,
		     assigned_to_user_id=COALESCE($2, assigned_to_user_id),
		     resolved_at=CASE WHEN $1='resolved' THEN CURRENT_TIMESTAMP ELSE resolved_at END,
		     updated_at=CURRENT_TIMESTAMP
		 WHERE id=$3`,
		status, assignedTo, id)
	return err
}
