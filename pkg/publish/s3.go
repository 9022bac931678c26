package publish

import (
	"bytes"
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
)

// ObjectPutter is the part of *s3.Client the S3Store uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store publishes documents to an S3 bucket.
//
// Example usage:
//
//	client := publish.NewS3Client(cfg.Publish)
//	store := publish.NewS3Store(client, "my-bucket", "site/")
//	result, err := publish.New(store).Publish(ctx, "index.html", page)
type S3Store struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewS3Store creates a store for bucket. prefix is prepended to every key.
func NewS3Store(client ObjectPutter, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Put uploads obj and returns its s3:// URL.
func (s *S3Store) Put(ctx context.Context, key string, obj *Object) (string, error) {
	key = s.prefix + key

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(obj.Body),
		ContentLength: aws.Int64(int64(len(obj.Body))),
		ContentType:   aws.String(obj.ContentType),
		Metadata:      obj.Metadata,
	}
	if obj.ContentEncoding != "" {
		input.ContentEncoding = aws.String(obj.ContentEncoding)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errors.New("E120").
			WithDetailf("s3://%s/%s", s.bucket, key).
			Wrap(err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// NewS3Client builds an S3 client from the publish settings. Credentials
// come from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(cfg config.PublishConfig) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.UsePathStyle,
		Credentials:  aws.NewCredentialsCache(envCredentials()),
	}
	if cfg.Region == "" {
		opts.Region = config.DefaultRegion
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// envCredentials reads static credentials from the environment.
func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "EnvironmentVariables",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, errors.New("E120").
				WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return creds, nil
	})
}
