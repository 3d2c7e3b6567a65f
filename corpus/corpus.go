// Package corpus defines the interface through which expansion reads the
// indexed document collection.
//
// The memory subpackage provides a ready-to-use in-memory implementation:
//
//	import "github.com/hupe1980/rexgo/corpus/memory"
//
//	idx := memory.New()
//	_ = idx.Add(1, "the quick brown fox")
//
// Custom backends implement Index; OpenTermList is the only operation the
// expansion loop depends on, so a backend only needs a forward index of
// per-document terms.
package corpus

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rexgo/core"
	"github.com/hupe1980/rexgo/termlist"
)

// ErrDocNotFound is returned when a document ID is not in the corpus.
var ErrDocNotFound = errors.New("document not found")

// ErrClosed is returned when an index is used after Close.
var ErrClosed = errors.New("index is closed")

// Index is implemented by storage layers that can enumerate the distinct
// terms of individual documents.
type Index interface {
	// OpenTermList opens an iterator over the distinct terms of the given
	// document, in ascending term order and positioned before the first
	// term. The caller owns the returned list and must close it.
	OpenTermList(id core.DocID) (termlist.TermList, error)
	// DocCount returns the number of documents in the corpus.
	DocCount() uint32
	// Close releases resources held by the index.
	Close() error
}

// DocError reports which document an index operation failed on.
//
// The original underlying error can be accessed via errors.Unwrap.
type DocError struct {
	ID    core.DocID
	cause error
}

// NewDocError wraps cause with the document it concerns.
func NewDocError(id core.DocID, cause error) *DocError {
	return &DocError{ID: id, cause: cause}
}

func (e *DocError) Error() string {
	return fmt.Sprintf("doc %d: %v", e.ID, e.cause)
}

func (e *DocError) Unwrap() error { return e.cause }
