package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ResumeStore keeps uploaded resumes in an S3 bucket and hands back the
// public object URL stored on the application record.
type ResumeStore struct {
	Client    *s3.Client
	Bucket    string
	KeyPrefix string
	Region    string
}

func NewResumeStore(ctx context.Context, bucket, keyPrefix, region string) (*ResumeStore, error) {
	cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &ResumeStore{
		Client:    s3.NewFromConfig(cfg),
		Bucket:    bucket,
		KeyPrefix: keyPrefix,
		Region:    region,
	}, nil
}

func (s *ResumeStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	// Random key prefix so two candidates named resume.pdf never collide.
	key := uuid.New().String() + "-" + sanitizeFilename(filename)
	if s.KeyPrefix != "" {
		key = s.KeyPrefix + "/" + key
	}

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put failed: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key), nil
}

func sanitizeFilename(name string) string {
	name = path.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '-'
	}, name)
}
