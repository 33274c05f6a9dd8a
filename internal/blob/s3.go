// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/dkuznetsov/legacy-keeper/internal/config"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
)

// S3Storage keeps payloads in an S3-compatible bucket. A non-empty endpoint
// in the configuration points the client at MinIO or another S3 clone.
type S3Storage struct {
	client *s3.Client
	bucket string
	logger *logger.Logger
}

var _ Storage = (*S3Storage)(nil)

// NewS3Storage builds an S3 client from the blob configuration. Static
// credentials are used when provided, otherwise the default AWS chain.
func NewS3Storage(cfg config.Blob, log *logger.Logger) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading S3 configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{client: client, bucket: cfg.S3Bucket, logger: log}, nil
}

// storageKey spreads objects by upload date and ends in a UUID so keys never
// collide regardless of the suggested name.
func storageKey(suggestedName string) string {
	d := time.Now()
	return fmt.Sprintf("assets/%d/%02d/%02d/%s_%s", d.Year(), d.Month(), d.Day(), uuid.New(), SanitizeFilename(suggestedName))
}

func (s *S3Storage) Put(ctx context.Context, r io.Reader, suggestedName string) (string, string, error) {
	storedName := fmt.Sprintf("%d_%s", time.Now().Unix(), SanitizeFilename(suggestedName))
	key := storageKey(suggestedName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", "", fmt.Errorf("error uploading blob object: %w", err)
	}

	s.logger.Debug().Str("bucket", s.bucket).Str("key", key).Msg("blob stored")

	return storedName, key, nil
}

func (s *S3Storage) Exists(ctx context.Context, locator string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(locator),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("error checking blob object: %w", err)
	}

	return true, nil
}

func (s *S3Storage) Read(ctx context.Context, locator string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(locator),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("error fetching blob object: %w", err)
	}

	return out.Body, nil
}
