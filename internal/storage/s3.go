package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sgeconfig "github.com/johann/sgetools/internal/config"
)

// S3Client uploads build archives to an S3-compatible bucket
type S3Client struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Client creates a new S3 client from the publish settings of cfg
func NewS3Client(ctx context.Context, cfg *sgeconfig.WebZipConfig) (*S3Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.S3Region),
		// S3-compatible services do not all accept the SDK's default checksums
		config.WithRequestChecksumCalculation(aws.RequestChecksumCalculationWhenRequired),
	}
	if cfg.S3MaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(cfg.S3MaxAttempts))
	}
	// Without static keys the default credential chain applies
	if cfg.S3AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = true // Required for MinIO and other S3-compatible services
	})

	return &S3Client{
		client: client,
		bucket: cfg.S3Bucket,
		prefix: cfg.S3Prefix,
	}, nil
}

// Key returns the object key used for a file with the given name
func (c *S3Client) Key(name string) string {
	return ObjectKey(c.prefix, name)
}

// Put uploads body as name under the configured prefix and returns the object key
func (c *S3Client) Put(ctx context.Context, name string, body io.ReadSeeker, size int64) (string, error) {
	key := c.Key(name)
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("application/zip"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload s3://%s/%s: %w", c.bucket, key, err)
	}
	return key, nil
}
