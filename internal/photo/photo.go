// Package photo stores task completion photos in S3-compatible object
// storage. Photos arrive from the client as base64 JPEG data-URLs; upload
// failure is deliberately non-fatal to task completion.
package photo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	ErrNotConfigured  = errors.New("photo storage not configured")
	ErrInvalidDataURL = errors.New("invalid image data URL")
)

// s3Client is the slice of the S3 API the store uses, as an interface for
// testability.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config holds S3-compatible storage settings. Empty bucket or credentials
// leave the store disabled.
type Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

type Store struct {
	cfg    Config
	client s3Client
	logger *slog.Logger
}

func NewStore(cfg Config, logger *slog.Logger) *Store {
	st := &Store{cfg: cfg, logger: logger}
	if cfg.Bucket != "" && cfg.AccessKey != "" && cfg.SecretKey != "" {
		st.client = newS3Client(cfg)
	}
	return st
}

func newS3Client(cfg Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// Enabled reports whether uploads can be attempted.
func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

// Upload puts a JPEG under the given key and returns its public URL.
func (s *Store) Upload(ctx context.Context, key string, data []byte) (string, error) {
	if !s.Enabled() {
		return "", ErrNotConfigured
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.objectURL(key), nil
}

func (s *Store) objectURL(key string) string {
	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.cfg.Endpoint, "/"), s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

// TaskKey names a task photo object: task-{id}-{unixMillis}.jpg.
func TaskKey(taskID int64, now time.Time) string {
	return fmt.Sprintf("task-%d-%d.jpg", taskID, now.UnixMilli())
}

// DecodeDataURL decodes a base64 image data-URL ("data:image/jpeg;base64,...")
// into raw bytes.
func DecodeDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, ErrInvalidDataURL
	}
	i := strings.Index(dataURL, ";base64,")
	if i < 0 {
		return nil, ErrInvalidDataURL
	}
	data, err := base64.StdEncoding.DecodeString(dataURL[i+len(";base64,"):])
	if err != nil {
		return nil, ErrInvalidDataURL
	}
	if len(data) == 0 {
		return nil, ErrInvalidDataURL
	}
	return data, nil
}
