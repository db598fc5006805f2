// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the tabular country source can be read from a
// bucket and exports can be written back to one. Both AWS S3 and self-hosted
// MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the target bucket (see EnsureBucket).
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
