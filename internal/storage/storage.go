// Package storage provides S3-compatible object storage for user media.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	appconfig "glowup/internal/config"
	"glowup/internal/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Bucket names. Each media surface gets its own bucket so per-bucket size
// limits and lifecycle rules stay independent.
const (
	BucketProfileImages = "profile-images"
	BucketGallery       = "gallery"
	BucketStories       = "stories"
)

// Buckets lists every bucket the application manages.
var Buckets = []string{BucketProfileImages, BucketGallery, BucketStories}

const presignExpiry = 5 * time.Minute

// ObjectStore is the interface the upload handlers depend on.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error)
	PresignUpload(ctx context.Context, bucket, key, contentType string) (string, error)
	Delete(ctx context.Context, bucket, key string) error
	PublicURL(bucket, key string) string
}

// S3Store implements ObjectStore against AWS S3 or any S3-compatible
// endpoint (MinIO in development).
type S3Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	publicURL string
}

// NewS3Store builds the store from application config and ensures every
// managed bucket exists.
func NewS3Store(ctx context.Context, cfg *appconfig.Config) (*S3Store, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	store := &S3Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		publicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
	}

	for _, bucket := range Buckets {
		if err := store.ensureBucket(ctx, bucket); err != nil {
			return nil, err
		}
	}

	slog.Info("object storage ready",
		slog.String("endpoint", cfg.S3Endpoint),
		slog.String("region", cfg.S3Region),
	)
	return store, nil
}

func (s *S3Store) ensureBucket(ctx context.Context, bucket string) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", bucket, err)
	}
	slog.Info("created bucket", slog.String("bucket", bucket))
	return nil
}

// Upload stores an object and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		observability.UploadsTotal.WithLabelValues(bucket, "error").Inc()
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	observability.UploadsTotal.WithLabelValues(bucket, "ok").Inc()
	return s.PublicURL(bucket, key), nil
}

// PresignUpload returns a short-lived URL the client can PUT the object to
// directly, bypassing the API for large media.
func (s *S3Store) PresignUpload(ctx context.Context, bucket, key, contentType string) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return req.URL, nil
}

// Delete removes an object.
func (s *S3Store) Delete(ctx context.Context, bucket, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// PublicURL returns the canonical public URL for an object.
func (s *S3Store) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicURL, bucket, key)
}

// ObjectKey builds a collision-resistant key from the owner and filename.
func ObjectKey(userID uint, filename string) string {
	return fmt.Sprintf("%d/%d-%s", userID, time.Now().UnixNano(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" {
		name = "upload"
	}
	return name
}
