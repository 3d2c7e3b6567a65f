// Package blobstore provides storage abstraction for corpus snapshots.
//
// Store is the interface for reading and writing named immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests and ephemeral corpora
//   - LocalStore: local filesystem with atomic writes
//   - minio.Store: MinIO and other S3-compatible object storage
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Open(ctx, name) (Blob, error)     // Open for reading
//	    Put(ctx, name, data) error        // Atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// # Throttling
//
// Wrap any Store with NewThrottled to cap the byte throughput of snapshot
// traffic, keeping background persistence from starving foreground work.
package blobstore
