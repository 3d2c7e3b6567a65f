// Package testutil provides testing utilities for rexgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic synthetic corpora,
// instrumented corpus doubles for leak and failure testing, and an exact
// reference implementation of bounded term selection.
//
// # Synthetic Corpora
//
//	rng := testutil.NewRNG(seed)
//	docs := rng.Documents(100, 40)      // 100 docs, ~40 words each
//
// # Instrumented Corpus Doubles
//
//	idx := testutil.NewCountingIndex(inner)
//	idx.FailAfter(3)                    // 4th OpenTermList fails
//	// ... run expansion ...
//	idx.AssertBalanced(t)               // every opened list was closed
//
// # Exact Selection (Ground Truth)
//
//	want := testutil.ExactTopK(candidates, k, minWeight)
package testutil
