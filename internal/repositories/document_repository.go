package repositories

import (
	"context"

	"estate-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DocumentRepository struct {
	DB *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *models.Document) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO documents(entity_type, entity_id, file_name, content_type, size_bytes,
		 storage_key, url, uploaded_by_user_id)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at`,
		d.EntityType, d.EntityID, d.FileName, d.ContentType, d.SizeBytes,
		d.StorageKey, d.URL, d.UploadedByUserID,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *DocumentRepository) Get(ctx context.Context, id int) (*models.Document, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, entity_type, entity_id, file_name, COALESCE(content_type, ''), size_bytes,
		 storage_key, COALESCE(url, ''), COALESCE(uploaded_by_user_id, 0), created_at
         FROM documents WHERE id=$1`, id)

	var d models.Document
	err := row.Scan(&d.ID, &d.EntityType, &d.EntityID, &d.FileName, &d.ContentType,
		&d.SizeBytes, &d.StorageKey, &d.URL, &d.UploadedByUserID, &d.CreatedAt)
	return &d, err
}

// ListByEntity returns all documents attached to one entity
func (r *DocumentRepository) ListByEntity(ctx context.Context, entityType string, entityID int) ([]*models.Document, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, entity_type, entity_id, file_name, COALESCE(content_type, ''), size_bytes,
		 storage_key, COALESCE(url, ''), COALESCE(uploaded_by_user_id, 0), created_at
         FROM documents WHERE entity_type=$1 AND entity_id=$2 ORDER BY created_at DESC`,
		entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		var d models.Document
		err := rows.Scan(&d.ID, &d.EntityType, &d.EntityID, &d.FileName, &d.ContentType,
			&d.SizeBytes, &d.StorageKey, &d.URL, &d.UploadedByUserID, &d.CreatedAt)
		if err != nil {
			return nil, err
		}
		docs = append(docs, &d)
	}
	return docs, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM documents WHERE id=$1`, id)
	return err
}
