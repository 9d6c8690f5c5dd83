package storage

import "context"

// BlobStore is the object-store surface the services need: content-typed
// uploads and prefix purges. Backed by an S3-compatible bucket in
// production and by an in-memory fake in tests.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PurgePrefix(ctx context.Context, prefix string) error
}
