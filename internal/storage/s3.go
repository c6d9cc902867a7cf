package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads media to public S3 buckets.
type S3Store struct {
	client *s3.Client
	region string
}

func NewS3Store(client *s3.Client, region string) *S3Store {
	return &S3Store{client: client, region: region}
}

func (s *S3Store) Upload(ctx context.Context, bucket, objectName string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(objectName),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", objectName, bucket, err)
	}

	return s.PublicURL(bucket, objectName), nil
}

func (s *S3Store) PublicURL(bucket, objectName string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, objectName)
}
