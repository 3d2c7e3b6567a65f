// Package memory provides an in-memory corpus index.
//
// Documents are held in a forward index of per-document term statistics,
// which is exactly the shape expansion needs: OpenTermList hands out a
// snapshot of a document's terms without touching the rest of the corpus.
// The index tracks document and collection frequencies on the side, so all
// weighting schemes work against it.
//
// Snapshots of the whole index can be written to an io.Writer or a blob
// store, optionally compressed; see SaveToWriter and SaveToStore.
package memory

import (
	"slices"
	"strings"
	"sync"

	"github.com/hupe1980/rexgo/core"
	"github.com/hupe1980/rexgo/corpus"
	"github.com/hupe1980/rexgo/termlist"
	"github.com/hupe1980/rexgo/weight"
)

// docTerm is one distinct term of a document with its occurrence count.
type docTerm struct {
	term string
	freq uint32
}

// Index is an in-memory corpus index. It is safe for concurrent use.
type Index struct {
	mu       sync.RWMutex
	forward  map[core.DocID][]docTerm
	docFreq  map[string]uint32
	collFreq map[string]uint64
	closed   bool
}

// New creates an empty in-memory index.
func New() *Index {
	return &Index{
		forward:  make(map[core.DocID][]docTerm),
		docFreq:  make(map[string]uint32),
		collFreq: make(map[string]uint64),
	}
}

var (
	_ corpus.Index     = (*Index)(nil)
	_ weight.TermStats = (*Index)(nil)
)

func tokenize(text string) []string {
	// Simple tokenizer: lowercase and split by whitespace.
	return strings.Fields(strings.ToLower(text))
}

// Add indexes a document's text, replacing any previous version of the
// document.
func (idx *Index) Add(id core.DocID, text string) error {
	freqs := make(map[string]uint32)
	for _, tok := range tokenize(text) {
		freqs[tok]++
	}

	return idx.AddTerms(id, freqs)
}

// AddTerms indexes a document from already-counted term frequencies,
// replacing any previous version of the document. Terms must be non-empty;
// zero-frequency terms are skipped.
func (idx *Index) AddTerms(id core.DocID, freqs map[string]uint32) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.closed {
		return corpus.ErrClosed
	}

	if _, ok := idx.forward[id]; ok {
		idx.deleteLocked(id)
	}

	terms := make([]docTerm, 0, len(freqs))
	for term, freq := range freqs {
		if term == "" || freq == 0 {
			continue
		}

		terms = append(terms, docTerm{term: term, freq: freq})
	}

	slices.SortFunc(terms, func(a, b docTerm) int {
		return strings.Compare(a.term, b.term)
	})

	idx.forward[id] = terms
	for _, dt := range terms {
		idx.docFreq[dt.term]++
		idx.collFreq[dt.term] += uint64(dt.freq)
	}

	return nil
}

// Delete removes a document from the index. Deleting an unknown document
// is a no-op.
func (idx *Index) Delete(id core.DocID) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.closed {
		return corpus.ErrClosed
	}

	idx.deleteLocked(id)

	return nil
}

func (idx *Index) deleteLocked(id core.DocID) {
	terms, ok := idx.forward[id]
	if !ok {
		return
	}

	for _, dt := range terms {
		if idx.docFreq[dt.term] <= 1 {
			delete(idx.docFreq, dt.term)
		} else {
			idx.docFreq[dt.term]--
		}

		if idx.collFreq[dt.term] <= uint64(dt.freq) {
			delete(idx.collFreq, dt.term)
		} else {
			idx.collFreq[dt.term] -= uint64(dt.freq)
		}
	}

	delete(idx.forward, id)
}

// OpenTermList implements corpus.Index. The returned list sees the
// document and the corpus-wide frequencies as of the moment it was opened.
func (idx *Index) OpenTermList(id core.DocID) (termlist.TermList, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.closed {
		return nil, corpus.ErrClosed
	}

	terms, ok := idx.forward[id]
	if !ok {
		return nil, corpus.NewDocError(id, corpus.ErrDocNotFound)
	}

	entries := make([]termlist.Entry, len(terms))
	for i, dt := range terms {
		entries[i] = termlist.Entry{
			Term:    dt.term,
			Freq:    dt.freq,
			DocFreq: idx.docFreq[dt.term],
		}
	}

	return termlist.FromEntries(entries), nil
}

// DocCount implements corpus.Index.
func (idx *Index) DocCount() uint32 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return uint32(len(idx.forward))
}

// CollFreq returns the total occurrence count of the term across all
// indexed documents.
func (idx *Index) CollFreq(term string) uint64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.collFreq[term]
}

// Close implements corpus.Index. Further operations return ErrClosed.
func (idx *Index) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.closed = true
	idx.forward = nil
	idx.docFreq = nil
	idx.collFreq = nil

	return nil
}
