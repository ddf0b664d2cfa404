// Package blobstore abstracts where catalog files live.
//
// Implementations:
//   - LocalStore: files under a root directory, atomic replace on write
//   - MemoryStore: in-process map, for tests
//   - s3.Store: AWS S3 (sub-package s3)
//   - minio.Store: MinIO and other S3-compatible endpoints (sub-package minio)
package blobstore
