package testutil

import (
	"sync"
	"testing"

	"github.com/hupe1980/rexgo/core"
	"github.com/hupe1980/rexgo/corpus"
	"github.com/hupe1980/rexgo/termlist"
)

// CountingIndex wraps a corpus.Index and counts term list opens and
// closes, optionally failing after a set number of opens. It verifies the
// merge tree's resource discipline: every list opened must be closed
// exactly once, on success and on failure paths alike.
type CountingIndex struct {
	inner corpus.Index

	mu        sync.Mutex
	opens     int
	closes    int
	failAfter int // fail the (failAfter+1)-th open; -1 = never
}

// NewCountingIndex wraps inner with open/close accounting.
func NewCountingIndex(inner corpus.Index) *CountingIndex {
	return &CountingIndex{inner: inner, failAfter: -1}
}

// FailAfter makes OpenTermList fail once n opens have succeeded.
func (c *CountingIndex) FailAfter(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failAfter = n
}

// OpenTermList implements corpus.Index.
func (c *CountingIndex) OpenTermList(id core.DocID) (termlist.TermList, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failAfter >= 0 && c.opens >= c.failAfter {
		return nil, corpus.NewDocError(id, corpus.ErrDocNotFound)
	}

	tl, err := c.inner.OpenTermList(id)
	if err != nil {
		return nil, err
	}

	c.opens++

	return &countedList{TermList: tl, idx: c}, nil
}

// DocCount implements corpus.Index.
func (c *CountingIndex) DocCount() uint32 {
	return c.inner.DocCount()
}

// Close implements corpus.Index.
func (c *CountingIndex) Close() error {
	return c.inner.Close()
}

// Opens returns how many term lists were opened successfully.
func (c *CountingIndex) Opens() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.opens
}

// Closes returns how many opened term lists were closed.
func (c *CountingIndex) Closes() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closes
}

// AssertBalanced fails the test unless every opened term list was closed
// exactly once.
func (c *CountingIndex) AssertBalanced(t testing.TB) {
	t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opens != c.closes {
		t.Errorf("term list leak: %d opened, %d closed", c.opens, c.closes)
	}
}

type countedList struct {
	termlist.TermList
	idx    *CountingIndex
	closed bool
}

func (l *countedList) Close() error {
	if l.closed {
		panic("testutil: term list closed twice")
	}

	l.closed = true

	l.idx.mu.Lock()
	l.idx.closes++
	l.idx.mu.Unlock()

	return l.TermList.Close()
}
