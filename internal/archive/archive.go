// Package archive uploads exported report files to S3-compatible object
// storage so the shop keeps an off-site copy of every generated report.
// Disabled unless object storage credentials are configured.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"log"

	appconfig "repair-console/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Uploader struct {
	client *s3.Client
	bucket string
	prefix string
}

// New builds an uploader from config. Returns nil (archiving disabled)
// when object storage is not configured.
func New(ctx context.Context, cfg *appconfig.Config) (*Uploader, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Archive.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("configure archive client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
	})

	return &Uploader{
		client: client,
		bucket: cfg.Archive.Bucket,
		prefix: cfg.Archive.Prefix,
	}, nil
}

// Upload stores one exported file. Best-effort: callers log failures and
// still serve the download.
func (u *Uploader) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	if u == nil {
		return nil
	}

	key := name
	if u.prefix != "" {
		key = u.prefix + "/" + name
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	log.Printf("[Archive] Uploaded %s (%d bytes)", key, len(data))
	return nil
}
