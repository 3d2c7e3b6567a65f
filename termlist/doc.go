// Package termlist provides ordered iterators over document terms and the
// machinery to merge several of them into a single deduplicated stream.
//
// A TermList yields the distinct terms of one document (or of a union of
// documents) in ascending lexicographic order. Merge combines any number of
// term lists into a balanced tree of binary union nodes:
//
//	lists := []termlist.TermList{a, b, c}
//	tree := termlist.Merge(lists)
//	for tree = termlist.Advance(tree); !tree.AtEnd(); tree = termlist.Advance(tree) {
//	    _ = tree.Term()
//	}
//	_ = tree.Close()
//
// # Self-Pruning Trees
//
// Union nodes remove themselves from the tree as their children exhaust:
// Next may return a replacement node that must take the caller's place in
// the tree. Advance handles the swap (and releases the node it replaces)
// for the common case of advancing a tree root.
//
// # Statistics
//
// While positioned on a term, a list reports the term's combined occurrence
// count across the documents it covers (Freq) and the number of documents in
// the whole corpus containing the term (DocFreq). AccumulateStats folds the
// per-document contributions for the current term into a Stats value, which
// weighting schemes consume.
package termlist
