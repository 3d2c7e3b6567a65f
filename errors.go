package rexgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rexgo/corpus"
)

var (
	// ErrNilIndex is returned when an Expander is created without a corpus
	// index.
	ErrNilIndex = errors.New("corpus index must not be nil")

	// ErrNotFound is returned when a reference document is not in the
	// corpus, e.g. because it was deleted after being judged relevant.
	ErrNotFound = errors.New("not found")

	// ErrIndexClosed is returned when the corpus index has been closed.
	ErrIndexClosed = errors.New("index is closed")
)

// translateError normalizes corpus-layer errors into the package's public
// error vocabulary. The underlying error stays reachable via errors.Is and
// errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, corpus.ErrDocNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	if errors.Is(err, corpus.ErrClosed) {
		return fmt.Errorf("%w: %w", ErrIndexClosed, err)
	}

	return err
}
