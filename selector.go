package rexgo

import "sort"

// selector keeps the best maxSize candidates seen so far and the weight
// threshold a newcomer must strictly exceed to get in.
//
// Storage stays a plain append-only slice until it first overflows; only
// then is it turned into a min-heap keyed by "worst candidate at the
// root". Most runs with a generous maxSize never overflow, and those pay
// nothing for heap maintenance. The whole-slice heapify on first overflow
// is deliberate: switching to incremental heap pushes from the start would
// reorder evictions when weights tie at the boundary.
type selector struct {
	maxSize   int
	minWeight float64

	items  []Candidate
	heaped bool
}

func newSelector(maxSize int, minWeight float64) *selector {
	return &selector{
		maxSize:   maxSize,
		minWeight: minWeight,
	}
}

// offer hands a scored candidate to the selector. Candidates must strictly
// exceed the current threshold; one weighing exactly the threshold is
// dropped, which keeps already-admitted content stable when weights tie at
// the margin. Each eviction raises the threshold to the weight of the
// worst retained candidate.
func (s *selector) offer(c Candidate) bool {
	if c.Weight <= s.minWeight {
		return false
	}

	s.items = append(s.items, c)
	if len(s.items) <= s.maxSize {
		return true
	}

	if s.heaped {
		s.siftUp(len(s.items) - 1)
	} else {
		s.heapify()
		s.heaped = true
	}

	// Drop the worst: move the root out of the way, shrink, restore.
	last := len(s.items) - 1
	s.items[0] = s.items[last]
	s.items = s.items[:last]
	s.siftDown(0)

	s.minWeight = s.items[0].Weight

	return true
}

// finish returns the retained candidates in final best-first order. The
// selector must not be used afterwards.
func (s *selector) finish() []Candidate {
	if s.heaped {
		// Heap sort: repeatedly swap the worst (root) to the shrinking
		// tail. A min-heap sorted this way ends up best-first.
		for n := len(s.items) - 1; n > 0; n-- {
			s.items[0], s.items[n] = s.items[n], s.items[0]
			s.siftDownBounded(0, n)
		}

		return s.items
	}

	sort.Slice(s.items, func(i, j int) bool {
		return s.items[i].Better(s.items[j])
	})

	return s.items
}

// worse orders the heap: the root is the candidate to evict first.
func (s *selector) worse(i, j int) bool {
	return s.items[j].Better(s.items[i])
}

func (s *selector) heapify() {
	for i := len(s.items)/2 - 1; i >= 0; i-- {
		s.siftDown(i)
	}
}

func (s *selector) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !s.worse(i, parent) {
			break
		}

		s.items[i], s.items[parent] = s.items[parent], s.items[i]
		i = parent
	}
}

func (s *selector) siftDown(i int) {
	s.siftDownBounded(i, len(s.items))
}

func (s *selector) siftDownBounded(i, n int) {
	for {
		worst := i

		if l := 2*i + 1; l < n && s.worse(l, worst) {
			worst = l
		}

		if r := 2*i + 2; r < n && s.worse(r, worst) {
			worst = r
		}

		if worst == i {
			return
		}

		s.items[i], s.items[worst] = s.items[worst], s.items[i]
		i = worst
	}
}
