// Package storage uploads organization assets to S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	"github.com/mentormatch/mentormatch-api/pkg/retry"
	"go.uber.org/zap"
)

// MaxLogoSize is the largest accepted logo after base64 decoding
const MaxLogoSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configure the storage client
type Options struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
	// PublicBaseURL overrides the URL prefix returned for uploaded objects
	PublicBaseURL string
}

// StorageClient uploads images to a single bucket
type StorageClient struct {
	s3         objectPutter
	bucketName string
	publicBase string
}

// NewStorageClient creates a new S3-compatible storage client
func NewStorageClient(opts Options) (*StorageClient, error) {
	if opts.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}

	s3Opts := s3.Options{
		Region: opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			opts.AccessKeyID,
			opts.SecretAccessKey,
			"", // session token not needed
		),
	}
	if opts.Endpoint != "" {
		s3Opts.BaseEndpoint = aws.String(opts.Endpoint)
		s3Opts.UsePathStyle = true
	}

	publicBase := strings.TrimRight(opts.PublicBaseURL, "/")
	if publicBase == "" {
		if opts.Endpoint != "" {
			publicBase = fmt.Sprintf("%s/%s", strings.TrimRight(opts.Endpoint, "/"), opts.BucketName)
		} else {
			publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.BucketName, opts.Region)
		}
	}

	logger.Info("Object storage client initialized",
		zap.String("bucket", opts.BucketName),
		zap.String("endpoint", opts.Endpoint),
		zap.String("region", opts.Region),
	)

	return &StorageClient{
		s3:         s3.New(s3Opts),
		bucketName: opts.BucketName,
		publicBase: publicBase,
	}, nil
}

// DecodeImage validates contentType and decodes base64 or data URI image data
func DecodeImage(imageData, contentType string) ([]byte, string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, "", fmt.Errorf("invalid file type: %s. Allowed types: jpeg, png, webp", contentType)
	}

	if strings.HasPrefix(imageData, "data:") {
		parts := strings.SplitN(imageData, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("invalid data URI format")
		}
		imageData = parts[1]
	}

	imageBytes, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 image: %w", err)
	}
	if len(imageBytes) == 0 {
		return nil, "", fmt.Errorf("image is empty")
	}
	if len(imageBytes) > MaxLogoSize {
		return nil, "", fmt.Errorf("file too large: %d bytes (max %d bytes)", len(imageBytes), MaxLogoSize)
	}

	return imageBytes, ext, nil
}

// UploadImage stores data under key and returns its public URL
func (s *StorageClient) UploadImage(ctx context.Context, data []byte, key, contentType string) (string, error) {
	start := time.Now()
	operation := "uploadImage"

	err := retry.Do(ctx, retry.StorageConfig(), "storage."+operation, func() error {
		_, err := s.s3.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucketName),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		return err
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("object_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("object_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(data)),
	)

	return fmt.Sprintf("%s/%s", s.publicBase, key), nil
}
