package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"globex-logistics/internal/core/config"
	"globex-logistics/internal/core/httpclient"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioImageStore implements ports.ImageStore on an S3-compatible backend.
type MinioImageStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioImageStore creates a minio client from the storage configuration.
// Requests go through the logging transport so uploads show up in debug logs
// like any other outbound call.
func NewMinioImageStore(cfg config.StorageConfig) (*MinioImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: &httpclient.LoggingRoundTripper{Proxied: http.DefaultTransport},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage client: %w", err)
	}

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &MinioImageStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

// EnsureBucket makes sure the image bucket exists before first use.
func (s *MinioImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// Upload stores one object and returns its public URL.
func (s *MinioImageStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, opts); err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

// Remove deletes the object behind a URL previously returned by Upload.
func (s *MinioImageStore) Remove(ctx context.Context, objectURL string) error {
	prefix := fmt.Sprintf("%s/%s/", s.publicURL, s.bucket)
	objectName := strings.TrimPrefix(objectURL, prefix)
	if objectName == objectURL || objectName == "" {
		return fmt.Errorf("url %s does not belong to bucket %s", objectURL, s.bucket)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s: %w", objectName, err)
	}
	return nil
}
