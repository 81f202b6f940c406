package models

import "time"

// Document is a file attachment stored in the R2 bucket. Only the storage key
// and public URL are persisted; bytes live in the bucket.
type Document struct {
	ID               int       `json:"id"`
	EntityType       string    `json:"entity_type"` // property, rental, tenant, ticket
	EntityID         int       `json:"entity_id"`
	FileName         string    `json:"file_name"`
	ContentType      string    `json:"content_type"`
	SizeBytes        int64     `json:"size_bytes"`
	StorageKey       string    `json:"storage_key"`
	URL              string    `json:"url"`
	UploadedByUserID int       `json:"uploaded_by_user_id"`
	CreatedAt        time.Time `json:"created_at"`
}
