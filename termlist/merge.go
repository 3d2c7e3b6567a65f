package termlist

import "slices"

// Merge combines the given term lists into a single list yielding their
// union. Lists are paired into binary union nodes round by round until one
// root remains, keeping the tree balanced so each advance costs O(log n)
// comparisons. Merge takes ownership of the lists; closing the returned
// list closes all of them.
//
// Merge panics if lists is empty.
func Merge(lists []TermList) TermList {
	if len(lists) == 0 {
		panic("termlist: merge of zero term lists")
	}

	tls := slices.Clone(lists)
	for len(tls) > 1 {
		j := 0

		for i := 0; i+1 < len(tls); i += 2 {
			tls[j] = newOr(tls[i], tls[i+1])
			j++
		}

		if len(tls)%2 == 1 {
			tls[j] = tls[len(tls)-1]
			j++
		}

		tls = tls[:j]
	}

	return tls[0]
}

// Advance moves a tree root to its next term, swapping in the replacement
// node when the tree restructures itself. It returns the root to use from
// now on; the caller must not touch the previous root again.
func Advance(root TermList) TermList {
	if repl := root.Next(); repl != nil {
		_ = root.Close()
		root = repl
	}

	return root
}
