// Package s3 stores cover images in an S3-compatible bucket
// (Cloudflare R2, MinIO, plain S3).
package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"libraryapi/internal/config"
)

type Client struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewClient(ctx context.Context, cs config.CoverStorage) (*Client, error) {
	creds := credentials.NewStaticCredentialsProvider(cs.AccessKeyID, cs.SecretAccessKey, "")

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cs.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if cs.Endpoint != "" {
			o.BaseEndpoint = aws.String(cs.Endpoint)
		}
		o.UsePathStyle = false
	})

	return &Client{
		client:        client,
		bucket:        cs.Bucket,
		publicBaseURL: strings.TrimRight(cs.PublicBaseURL, "/"),
	}, nil
}

func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("s3: put object %s: %w", key, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3: delete object %s: %w", key, err)
	}
	return nil
}

// PublicURL builds the externally reachable URL for a stored object.
func (c *Client) PublicURL(key string) string {
	return c.publicBaseURL + "/" + key
}
