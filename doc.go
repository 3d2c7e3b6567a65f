// Package rexgo provides query expansion through relevance feedback for Go.
//
// Rexgo is an embeddable term-selection engine: given a set of documents a
// user has judged relevant (the reference set) and a target size k, it
// proposes the k candidate terms that best discriminate those documents
// from the rest of the corpus, each with a numeric weight. The proposed
// terms are typically appended to the original query and the search rerun.
//
// # Quick Start
//
// Index a corpus, judge some documents relevant, expand:
//
//	ctx := context.Background()
//
//	idx := memory.New()
//	_ = idx.Add(1, "the quick brown fox jumps over the lazy dog")
//	_ = idx.Add(2, "the quick red fox outfoxes the hounds")
//	_ = idx.Add(3, "stock markets rally on quick gains")
//
//	ex, _ := rexgo.New(idx)
//
//	result, _ := ex.Expand(rset.New(1, 2)).
//	    MaxSize(5).
//	    Run(ctx)
//
//	for term, weight := range result.All() {
//	    fmt.Println(term, weight)
//	}
//
// # Weighting Schemes
//
// The weight package provides three schemes: Frequency (combined raw
// occurrence counts), Trad (Robertson/Sparck-Jones probabilistic relevance,
// the default) and Bo1 (Bose-Einstein divergence from randomness, suited to
// pseudo relevance feedback). Custom schemes implement weight.Engine.
//
// # Key Features
//
//   - Streaming union merge over per-document term lists (self-pruning
//     binary tree, no candidate materialization)
//   - Bounded top-k selection with a dynamically rising weight threshold
//   - Pluggable weighting engines and term deciders
//   - Roaring Bitmap reference sets
//   - In-memory corpus with compressed snapshot persistence to pluggable
//     blob stores (local disk, S3-compatible object storage)
//   - Concurrent batch expansion with a bounded worker pool
//   - Structured logging (log/slog) and pluggable metrics collection
package rexgo
