package s3

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-service/internal/ports/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var (
	ErrNotConfigured = errors.New("s3: bucket not configured")
	ErrUpload        = errors.New("s3: upload failed")
)

// Config del cliente. Se construye explícitamente desde config.StorageConfig;
// el cliente no lee variables de entorno por su cuenta.
type Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string

	// Endpoint: opcional, para MinIO/localstack.
	Endpoint string
	// PublicBaseURL: opcional, p.ej. CloudFront. Tiene prioridad al armar URLs.
	PublicBaseURL string

	UseAccelerate bool
	UsePathStyle  bool

	// Timeout por operación. Default 15s.
	Timeout time.Duration

	// ACL pública en cada objeto (buckets con ACLs habilitadas).
	PublicRead bool
}

// putAPI es el subconjunto de *s3.Client que usamos (permite fakes en tests).
type putAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Client struct {
	api     putAPI
	cfg     Config
	timeout time.Duration
}

// New arma el cliente AWS a partir de cfg. Si no vienen credenciales estáticas
// se usa la cadena default del SDK (IAM role, perfil, etc).
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, ErrNotConfigured
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UseAccelerate = cfg.UseAccelerate
		o.UsePathStyle = cfg.UsePathStyle
		if ep := strings.TrimSpace(cfg.Endpoint); ep != "" {
			o.BaseEndpoint = aws.String(ep)
		}
	})

	return newWithAPI(api, cfg), nil
}

func newWithAPI(api putAPI, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{api: api, cfg: cfg, timeout: timeout}
}

func (c *Client) Put(ctx context.Context, obj storage.Object) (string, error) {
	key := strings.TrimLeft(strings.TrimSpace(obj.Key), "/")
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrUpload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	in := &s3.PutObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
		Body:   obj.Body,
	}
	if obj.ContentType != "" {
		in.ContentType = aws.String(obj.ContentType)
	}
	if obj.Size > 0 {
		in.ContentLength = aws.Int64(obj.Size)
	}
	if c.cfg.PublicRead {
		in.ACL = s3types.ObjectCannedACLPublicRead
	}

	if _, err := c.api.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return c.URL(key), nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	})
	return err
}

// URL es determinística: depende solo de bucket, región/endpoint y key.
func (c *Client) URL(key string) string {
	return PublicURL(c.cfg, key)
}

func PublicURL(cfg Config, key string) string {
	key = strings.TrimLeft(key, "/")

	if base := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"); base != "" {
		return base + "/" + key
	}
	if ep := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"); ep != "" {
		// Endpoints custom (MinIO) suelen ir con path-style.
		return ep + "/" + cfg.Bucket + "/" + key
	}
	if cfg.UseAccelerate {
		return fmt.Sprintf("https://%s.s3-accelerate.amazonaws.com/%s", cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", cfg.Bucket, cfg.Region, key)
}
