package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/chartbase/backend/internal/config"
)

// deleteBatchSize is the DeleteObjects maximum of the S3 API. Purges page
// through listings and issue one removal call per full batch.
const deleteBatchSize = 1000

type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}

	return &MinioStore{client: client, bucket: cfg.S3Bucket}, nil
}

// EnsureBucket creates the bucket if it does not exist yet. Called once at
// startup so request paths can assume the bucket is there.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %q: %w", s.bucket, err)
	}
	return nil
}

func (s *MinioStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %q: %w", key, err)
	}
	return nil
}

// PurgePrefix deletes every object under prefix, batching removals at the
// API ceiling until the listing is drained.
func (s *MinioStore) PurgePrefix(ctx context.Context, prefix string) error {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true})
	if err := purgeBatches(ctx, objects, s.removeBatch); err != nil {
		return fmt.Errorf("purge %q: %w", prefix, err)
	}
	return nil
}

// purgeBatches drains objects and issues one remove call per full batch of
// deleteBatchSize keys, plus one for the trailing partial batch. The batch
// slice is reused between calls; remove must not retain it.
func purgeBatches(ctx context.Context, objects <-chan minio.ObjectInfo, remove func(context.Context, []minio.ObjectInfo) error) error {
	batch := make([]minio.ObjectInfo, 0, deleteBatchSize)

	for obj := range objects {
		if obj.Err != nil {
			return obj.Err
		}
		batch = append(batch, obj)
		if len(batch) == deleteBatchSize {
			if err := remove(ctx, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		return remove(ctx, batch)
	}
	return nil
}

func (s *MinioStore) removeBatch(ctx context.Context, objects []minio.ObjectInfo) error {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, obj := range objects {
		ch <- obj
	}
	close(ch)

	for res := range s.client.RemoveObjects(ctx, s.bucket, ch, minio.RemoveObjectsOptions{}) {
		if res.Err != nil {
			return fmt.Errorf("delete %q: %w", res.ObjectName, res.Err)
		}
	}
	return nil
}
