package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

// BlobConfig holds the credentials and location of the S3-compatible bucket
// used in deployed mode. PublicBaseURL is the CDN/bucket URL under which
// objects are publicly readable.
type BlobConfig struct {
	Key           string
	Secret        string
	Region        string
	Endpoint      string
	Bucket        string
	PublicBaseURL string
}

// BlobStore persists documents as fixed-name public-read objects. Missing
// objects are reported as ErrNotFound so fresh deployments start from empty
// defaults instead of failing.
type BlobStore struct {
	client *s3.Client
	cfg    BlobConfig
}

func NewBlobStore(ctx context.Context, cfg BlobConfig) (*BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading blob credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &BlobStore{client: client, cfg: cfg}, nil
}

func (s *BlobStore) Load(ctx context.Context, doc Document) ([]byte, error) {
	key := doc.Filename()
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
	})
	if err != nil {
		if isMissingObject(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

func (s *BlobStore) Save(ctx context.Context, doc Document, data []byte) error {
	key := doc.Filename()
	contentType := "application/json"
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.cfg.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}

func isMissingObject(err error) bool {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) &&
		(apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound")
}

// BlobUploader stores uploaded assets next to the content documents, each
// under a fresh uuid prefix so filenames never collide.
type BlobUploader struct {
	store *BlobStore
}

func NewBlobUploader(store *BlobStore) *BlobUploader {
	return &BlobUploader{store: store}
}

func (u *BlobUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := uuid.New().String() + "/" + sanitizeFilename(filename)
	_, err := u.store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.store.cfg.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return strings.TrimSuffix(u.store.cfg.PublicBaseURL, "/") + "/" + key, nil
}

func sanitizeFilename(filename string) string {
	if filename == "" {
		return "unnamed"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		}
		return '_'
	}, filename)
}
