package storage

import (
	"amora/amora/config"
	"context"
	"io"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient stores persona profile photos and hands out short-lived
// presigned URLs for the client to render.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

const photoURLExpiry = time.Hour

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}
	bucket := cfg.MinIOBucket
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: bucket}, nil
}

// UploadPersonaPhoto stores one profile photo and returns its object key.
func (m *MinIOClient) UploadPersonaPhoto(ctx context.Context, personaID, filename, contentType string, body io.Reader, size int64) (string, error) {
	key := path.Join("personas", personaID, filename)
	_, err := m.client.PutObject(ctx, m.bucket, key, body, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return key, nil
}

// PhotoURL presigns a GET for the stored photo.
func (m *MinIOClient) PhotoURL(ctx context.Context, key string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, photoURLExpiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
