package fixtures

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kendall-kelly/task-exchange-api/config"
)

// S3GetObjectAPI is the part of the S3 client used to fetch fixtures
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads fixtures from objects under a bucket prefix
type S3Source struct {
	client S3GetObjectAPI
	bucket string
	prefix string
}

// NewS3Source builds an S3 client from the AWS settings in cfg.
// Static credentials are used when both keys are set, the default AWS chain otherwise.
func NewS3Source(ctx context.Context, cfg *config.Config) (*S3Source, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3SourceWithClient(s3.NewFromConfig(awsConfig), cfg.FixturesS3Bucket, cfg.FixturesS3Prefix), nil
}

// NewS3SourceWithClient wraps an existing client
func NewS3SourceWithClient(client S3GetObjectAPI, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: prefix}
}

// Open fetches the object prefix/name
func (s *S3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := path.Join(s.prefix, name)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixture s3://%s/%s: %w", s.bucket, key, err)
	}
	return out.Body, nil
}
