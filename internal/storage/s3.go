package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/scriptlens/scriptlens/internal/util"
)

func NewS3Client(ctx context.Context) *s3.Client {
	region := util.GetEnv("AWS_REGION")
	endpoint := util.GetEnv("AWS_ENDPOINT")
	accessKey := util.GetEnv("AWS_ACCESS_KEY")
	secretKey := util.GetEnv("AWS_SECRET_KEY")
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithBaseEndpoint(endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)),
	)
	if err != nil {
		return nil
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	return client
}

func archiveKey(publicID string) string {
	return fmt.Sprintf("scripts/%s.txt", publicID)
}

// PutScriptArchive stores the raw text of an ingested script under a key
// derived from its public ID and returns that key.
func PutScriptArchive(ctx context.Context, client *s3.Client, publicID string, rawText string) (string, error) {
	bucket := util.GetEnv("AWS_BUCKET")
	key := archiveKey(publicID)
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(rawText),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload script archive to S3: %v", err)
	}

	return key, nil
}

// GetScriptArchive fetches the archived raw text of a script.
func GetScriptArchive(ctx context.Context, client *s3.Client, publicID string) (string, error) {
	bucket := util.GetEnv("AWS_BUCKET")
	result, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(archiveKey(publicID)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get script archive from S3: %v", err)
	}
	defer result.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, result.Body); err != nil {
		return "", fmt.Errorf("failed to read script archive contents: %v", err)
	}

	return buf.String(), nil
}

// DeleteScriptArchive removes the archived raw text of a script.
func DeleteScriptArchive(ctx context.Context, client *s3.Client, publicID string) error {
	bucket := util.GetEnv("AWS_BUCKET")
	_, err := client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(archiveKey(publicID)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete script archive from S3: %v", err)
	}

	return nil
}
