package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"estate-backend/internal/config"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// StorageService stores document files in a Cloudflare R2 bucket through the
// S3 API and records their metadata in Postgres
type StorageService struct {
	cfg          *config.R2Config
	documentRepo *repositories.DocumentRepository
}

func NewStorageService(cfg *config.R2Config, documentRepo *repositories.DocumentRepository) *StorageService {
	return &StorageService{cfg: cfg, documentRepo: documentRepo}
}

// Enabled reports whether the bucket is configured
func (s *StorageService) Enabled() bool {
	return s.cfg != nil && s.cfg.Enabled()
}

func (s *StorageService) client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure S3 client: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.Endpoint)
	}), nil
}

// Upload pushes a file to the bucket and records the document row
func (s *StorageService) Upload(ctx context.Context, entityType string, entityID int, fileName, contentType string, size int64, body io.Reader, uploadedBy int) (*models.Document, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("document storage is not configured")
	}

	key := fmt.Sprintf("documents/%s/%d/%d_%s",
		entityType, entityID, timeutil.Now().UnixNano(), sanitizeFileName(fileName))

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to bucket: %w", err)
	}

	url := ""
	if s.cfg.PublicURL != "" {
		url = strings.TrimRight(s.cfg.PublicURL, "/") + "/" + key
	}

	doc := &models.Document{
		EntityType:       entityType,
		EntityID:         entityID,
		FileName:         fileName,
		ContentType:      contentType,
		SizeBytes:        size,
		StorageKey:       key,
		URL:              url,
		UploadedByUserID: uploadedBy,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Download streams a stored document back
func (s *StorageService) Download(ctx context.Context, id int) (*models.Document, io.ReadCloser, error) {
	doc, err := s.documentRepo.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("document not found")
	}

	client, err := s.client(ctx)
	if err != nil {
		return nil, nil, err
	}
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(doc.StorageKey),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch from bucket: %w", err)
	}
	return doc, out.Body, nil
}

// Delete removes the object and the metadata row
func (s *StorageService) Delete(ctx context.Context, id int) error {
	doc, err := s.documentRepo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("document not found")
	}

	client, err := s.client(ctx)
	if err != nil {
		return err
	}
	if _, err := client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(doc.StorageKey),
	}); err != nil {
		return fmt.Errorf("failed to delete from bucket: %w", err)
	}

	return s.documentRepo.Delete(ctx, id)
}

func (s *StorageService) ListByEntity(ctx context.Context, entityType string, entityID int) ([]*models.Document, error) {
	return s.documentRepo.ListByEntity(ctx, entityType, entityID)
}

func sanitizeFileName(name string) string {
	name = path.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
