// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that the manifest cache can persist its
// components in AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the cache bucket is available.
//   - PutObject / GetObject: write and read one persisted value.
//   - ListObjects: enumerate a namespace (prefix, recursive).
//   - RemoveObjects: clear a namespace in one batch.
//
// IsNotFound translates MinIO error responses for missing keys.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "loadout")
package storage
