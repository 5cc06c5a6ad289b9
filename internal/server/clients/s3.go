package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/avolkov/dogshelter/internal/common"
	"github.com/avolkov/dogshelter/internal/server/config"
)

// seams for tests
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// S3Uploader stores uploads in an S3-compatible bucket (AWS or MinIO via a
// custom base endpoint). Selected with UPLOAD_BACKEND=s3.
type S3Uploader struct {
	config *config.Config
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	return &S3Uploader{config: cfg}
}

// GetRandomStorageKey buckets objects by upload date, with a uuid leaf so
// identical filenames never collide.
func GetRandomStorageKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%d/%d/%v-%s", d.Year(), d.Month(), d.Day(), uuid.New(), filename)
}

func (u *S3Uploader) getClient() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(u.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.config.S3RootUser,
			u.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(u.config.S3BaseEndpoint)
		}
	}), nil
}

func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (json.RawMessage, error) {

	client, err := u.getClient()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	bucket := u.config.S3Bucket
	key := GetRandomStorageKey(filename)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        r,
		ContentType: &contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	body, err := json.Marshal(map[string]string{"bucket": bucket, "key": key})
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
