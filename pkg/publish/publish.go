// Package publish uploads rendered documents to object storage.
package publish

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Publisher uploads a rendered document under the given key and returns the
// location it was stored at.
type Publisher interface {
	Publish(ctx context.Context, key string, html []byte) (string, error)
}

// S3API is the subset of the S3 client the publisher uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher stores rendered documents in an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	pub := publish.NewS3Publisher(s3.NewFromConfig(cfg), "my-bucket", "site/")
//	loc, err := pub.Publish(ctx, "index.html", rendered)
type S3Publisher struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Publisher creates a publisher for the given bucket. prefix is
// prepended to every key (e.g. "site/").
func NewS3Publisher(client S3API, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Publish implements Publisher.
func (p *S3Publisher) Publish(ctx context.Context, key string, html []byte) (string, error) {
	if p.bucket == "" {
		return "", fmt.Errorf("publish: no bucket configured")
	}
	fullKey := p.prefix + key

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("publish: put s3://%s/%s: %w", p.bucket, fullKey, err)
	}
	return fmt.Sprintf("s3://%s/%s", p.bucket, fullKey), nil
}
