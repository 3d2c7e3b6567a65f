package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a Store and caps the byte throughput of blob reads
// and writes. Snapshot persistence runs in the background of live serving,
// so its IO is paced rather than bursty.
type ThrottledStore struct {
	inner   Store
	limiter *rate.Limiter
}

// NewThrottled wraps inner with a throughput cap of bytesPerSec.
func NewThrottled(inner Store, bytesPerSec int64) *ThrottledStore {
	return &ThrottledStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec)),
	}
}

// wait blocks until the limiter admits n bytes, splitting requests larger
// than the burst.
func (s *ThrottledStore) wait(ctx context.Context, n int) error {
	burst := s.limiter.Burst()

	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}

		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}

		n -= chunk
	}

	return nil
}

// Open opens a blob for reading. Reads through the returned blob count
// against the throughput cap.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	return &throttledBlob{inner: b, store: s}, nil
}

// Put writes a blob atomically.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}

	return s.inner.Put(ctx, name, data)
}

// Delete removes a blob.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List returns all blob names with the given prefix.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// throttledBlob implements Blob with paced reads.
type throttledBlob struct {
	inner Blob
	store *ThrottledStore
}

func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := b.store.wait(ctx, len(p)); err != nil {
		return 0, err
	}

	return b.inner.ReadAt(ctx, p, off)
}

func (b *throttledBlob) Close() error {
	return b.inner.Close()
}

func (b *throttledBlob) Size() int64 {
	return b.inner.Size()
}
