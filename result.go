package rexgo

import "iter"

// Result is the outcome of one expansion run: the best candidate terms in
// best-first order plus the total number of candidates considered.
//
// A Result is immutable once returned from Run and may be read from any
// number of goroutines without synchronization. Copies of the pointer
// share the same backing storage; iterators borrow that storage and must
// not outlive the Result they came from.
type Result struct {
	items          []Candidate
	candidateCount uint64
	populated      bool
}

// populate fills the result exactly once. A second call is a bug in the
// expansion pipeline, not a runtime condition.
func (r *Result) populate(items []Candidate, candidateCount uint64) {
	if r.populated {
		panic("rexgo: result populated twice")
	}

	r.items = items
	r.candidateCount = candidateCount
	r.populated = true
}

// Size returns the number of retained candidate terms. At most the
// requested max size; possibly fewer if the stream ran short or the
// weight threshold filtered candidates out.
func (r *Result) Size() int {
	return len(r.items)
}

// CandidateCount returns the total number of candidates considered during
// the run: every distinct term the reference documents contain that the
// decider accepted, whether or not it made the final selection. It is an
// upper bound on how large the result could have grown with an unlimited
// max size and no weight threshold.
func (r *Result) CandidateCount() uint64 {
	return r.candidateCount
}

// Items returns the retained candidates in best-first order. The returned
// slice is shared; callers must not modify it.
func (r *Result) Items() []Candidate {
	return r.items
}

// Iterator returns a cursor positioned before the first (best) candidate.
func (r *Result) Iterator() *ResultIterator {
	return &ResultIterator{result: r, pos: -1}
}

// All returns an iterator over (term, weight) pairs in best-first order,
// for use with range-over-func:
//
//	for term, weight := range result.All() {
//	    ...
//	}
func (r *Result) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for _, item := range r.items {
			if !yield(item.Term, item.Weight) {
				return
			}
		}
	}
}

// ResultIterator is a cursor over a Result, advancing from the best
// candidate toward the worst. It borrows the Result's storage and is not
// safe for concurrent use; create one per goroutine instead.
type ResultIterator struct {
	result *Result
	pos    int
}

// Next advances to the next candidate and reports whether one exists,
// enabling the usual scanning loop:
//
//	for it := result.Iterator(); it.Next(); {
//	    fmt.Println(it.Term(), it.Weight())
//	}
func (it *ResultIterator) Next() bool {
	if !it.AtEnd() {
		it.pos++
	}

	return !it.AtEnd()
}

// AtEnd reports whether the cursor has advanced past the last candidate.
func (it *ResultIterator) AtEnd() bool {
	return it.pos >= len(it.result.items)
}

// Term returns the current candidate's term. Calling it before the first
// Next or after AtEnd is a contract violation and panics.
func (it *ResultIterator) Term() string {
	return it.current().Term
}

// Weight returns the current candidate's weight. Calling it before the
// first Next or after AtEnd is a contract violation and panics.
func (it *ResultIterator) Weight() float64 {
	return it.current().Weight
}

func (it *ResultIterator) current() Candidate {
	if it.pos < 0 {
		panic("rexgo: result iterator used before Next")
	}

	if it.AtEnd() {
		panic("rexgo: result iterator dereferenced at end")
	}

	return it.result.items[it.pos]
}
