package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"videoteca-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const presignExpiry = 15 * time.Minute

// MinIOService stores movie cover images in an S3-compatible bucket. Uploads
// go directly from the browser through a presigned PUT URL.
type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure cover bucket, continuing")
	}

	return service, nil
}

// ensureBucket creates the bucket on first run and opens it for public reads
// so cover URLs can be embedded directly in the catalog UI.
func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Cover bucket created")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	return s.client.SetBucketPolicy(ctx, s.bucket, policy)
}

// PresignCoverUpload returns a short-lived PUT URL for the cover file plus the
// public URL where it will be readable after the upload completes.
func (s *MinIOService) PresignCoverUpload(ctx context.Context, filename string) (string, string, error) {
	ext := filepath.Ext(filename)
	objectName := fmt.Sprintf("cover_%s%s", uuid.New().String()[:8], ext)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to presign cover upload")
		return "", "", fmt.Errorf("failed to presign cover upload: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s", s.publicURL, objectName)

	s.logger.WithFields(logrus.Fields{
		"object": objectName,
		"expiry": presignExpiry,
	}).Info("Presigned cover upload")

	return presignedURL.String(), publicURL, nil
}

// DeleteFile removes a cover object; accepts either a bare object name or a
// full public URL.
func (s *MinIOService) DeleteFile(objectPath string) error {
	if strings.Contains(objectPath, "http") {
		parts := strings.Split(objectPath, "/")
		objectPath = parts[len(parts)-1]
	}
	objectPath = strings.TrimPrefix(objectPath, s.bucket+"/")

	err := s.client.RemoveObject(context.Background(), s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("object", objectPath).Error("Failed to delete cover")
		return fmt.Errorf("failed to delete cover: %w", err)
	}

	s.logger.WithField("object", objectPath).Info("Cover deleted")
	return nil
}
