// Package blobstore provides storage abstraction for datasets and reports.
//
// A Store opens named blobs for streaming reads and stores whole blobs with Put.
// Datasets are read once front to back, so Blob is a plain io.ReadCloser.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, reads through a read-only memory mapping
//   - MemoryStore: in-memory, for tests
//   - HTTPStore: read-only HTTP(S) downloads (the default for RIR mirrors)
//   - s3.Store: Amazon S3 with multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type Store interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	}
package blobstore
