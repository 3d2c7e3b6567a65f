package testutil

import "sort"

// Scored is a (term, weight) pair for ground-truth selection.
type Scored struct {
	Term   string
	Weight float64
}

// ExactTopK is the obvious reference implementation of bounded term
// selection: sort everything, apply the strict threshold, take k. Used to
// cross-check the streaming selector on random inputs.
//
// The streaming selector deliberately keeps an admitted term over a
// later equal-weight one, so the two agree only when no weight tie
// straddles the selection boundary. Feed distinct weights when comparing.
func ExactTopK(candidates []Scored, k int, minWeight float64) []Scored {
	kept := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		if c.Weight > minWeight {
			kept = append(kept, c)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Weight != kept[j].Weight {
			return kept[i].Weight > kept[j].Weight
		}

		return kept[i].Term < kept[j].Term
	})

	if len(kept) > k {
		kept = kept[:k]
	}

	return kept
}
