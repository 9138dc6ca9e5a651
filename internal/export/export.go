package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/client-registry/internal/config"
	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/logging"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Snapshot is the exported view of the registry.
type Snapshot struct {
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Total      int                `json:"total" yaml:"total"`
	Clients    []dto.ClientRowDTO `json:"clients" yaml:"clients"`
}

func NewSnapshot(rows []dto.ClientRowDTO, now time.Time) Snapshot {
	if rows == nil {
		rows = []dto.ClientRowDTO{}
	}
	return Snapshot{
		ExportedAt: now.UTC(),
		Total:      len(rows),
		Clients:    rows,
	}
}

// Encode writes snap to w in the given format.
func Encode(w io.Writer, format string, snap Snapshot) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format: %q", format)
	}
}

func ContentType(format string) string {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		return "application/yaml"
	default:
		return "application/json"
	}
}

// ToFile writes snap to path, or to stdout when path is empty or "-".
func ToFile(path, format string, snap Snapshot, stdout io.Writer) error {
	if path == "" || path == "-" {
		return Encode(stdout, format, snap)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := Encode(f, format, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Uploader is the part of the S3 client used for exports.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client builds a client from static credentials. A custom endpoint
// switches to path-style addressing for S3-compatible stores.
func NewS3Client(cfg *config.Config) (*s3.Client, error) {
	if cfg.S3AccessKeyID == "" || cfg.S3SecretAccessKey == "" {
		return nil, fmt.Errorf("s3 credentials are not configured")
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return s3.New(opts), nil
}

// ToS3 uploads snap to bucket/key.
func ToS3(ctx context.Context, up Uploader, bucket, key, format string, snap Snapshot) error {
	if bucket == "" || key == "" {
		return fmt.Errorf("bucket and key are required")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, format, snap); err != nil {
		return err
	}

	_, err := up.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String(ContentType(format)),
	})
	if err != nil {
		return fmt.Errorf("upload s3://%s/%s: %w", bucket, key, err)
	}

	logging.Infof("export: uploaded %d clients to s3://%s/%s", snap.Total, bucket, key)
	return nil
}
