// Package rset provides the reference set: the documents a caller has
// judged relevant and wants candidate expansion terms drawn from.
//
// Sets are held in Roaring Bitmaps, so membership stays compact even for
// machine-generated sets covering many documents:
//
//	set := rset.New(12, 97)
//	set.Add(204)
//	for id := range set.All() {
//	    _ = id
//	}
//
// A Set is not safe for concurrent mutation; expansion only reads it.
package rset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rexgo/core"
)

// Set is a collection of documents judged relevant. The zero value is not
// usable; create sets with New.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a Set holding the given document IDs.
func New(ids ...core.DocID) *Set {
	s := &Set{rb: roaring.New()}
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}

	return s
}

// Add marks a document as relevant.
func (s *Set) Add(id core.DocID) {
	s.rb.Add(uint32(id))
}

// Remove withdraws a relevance judgment.
func (s *Set) Remove(id core.DocID) {
	s.rb.Remove(uint32(id))
}

// Contains reports whether the document has been judged relevant.
func (s *Set) Contains(id core.DocID) bool {
	return s.rb.Contains(uint32(id))
}

// IsEmpty reports whether the set holds no documents.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of documents in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Union merges the judgments of another set into this one.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// All returns an iterator over the document IDs in ascending order.
func (s *Set) All() iter.Seq[core.DocID] {
	return func(yield func(core.DocID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(core.DocID(it.Next())) {
				return
			}
		}
	}
}
