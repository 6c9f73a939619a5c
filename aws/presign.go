package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// PresignUpload returns a time-limited PUT URL for a fresh upload key scoped
// to the caller's email.
func (c *S3Client) PresignUpload(ctx context.Context, email string) (url, key string, err error) {
	key = fmt.Sprintf("uploads/%s/%s", email, uuid.New())

	req, err := c.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: c.Bucket,
		Key:    &key,
	}, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", "", err
	}

	return req.URL, key, nil
}
