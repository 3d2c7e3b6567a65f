package termlist

// Stats accumulates the reference-set statistics of a single term. A fresh
// value is populated via TermList.AccumulateStats while the list is
// positioned on that term.
type Stats struct {
	// RefDocFreq is the number of reference documents containing the term.
	RefDocFreq uint32

	// FreqSum is the total occurrence count of the term across those
	// documents.
	FreqSum uint64
}

// Position is the read-only view of a term list's current position. It is
// the part of a TermList that weighting schemes are allowed to see.
type Position interface {
	// Freq returns the occurrence count of the current term, summed across
	// the documents this list covers.
	Freq() uint32

	// DocFreq returns the number of documents in the whole corpus that
	// contain the current term.
	DocFreq() uint32

	// AccumulateStats folds this list's contribution for the current term
	// into s.
	AccumulateStats(s *Stats)
}

// TermList iterates the distinct terms of one document, or of a union of
// documents, in ascending lexicographic order. Terms are non-empty strings.
//
// A freshly opened list is positioned before its first term; Next must be
// called before the accessors. Once AtEnd reports true the accessors must
// not be used again.
type TermList interface {
	Position

	// Next advances to the next term. A non-nil return value is a
	// replacement node: the tree has restructured itself and the caller
	// must swap the replacement into the slot this list occupied, then
	// release the list it replaced. Advance does both.
	Next() TermList

	// AtEnd reports whether the list has advanced past its last term.
	AtEnd() bool

	// Term returns the current term.
	Term() string

	// Close releases any resources held by the list and its children.
	Close() error
}
