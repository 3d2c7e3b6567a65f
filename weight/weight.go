// Package weight provides the weighting schemes that score candidate
// expansion terms.
//
// An Engine is driven with a reset/collect/score cycle per candidate term:
// the evaluator resets it, points it at the merged stream's current
// position to gather statistics, then reads the weight. Engines are
// stateful between Reset and Weight and must not be shared across
// concurrent expansions.
//
// # Schemes
//
//   - Frequency: combined occurrence count across the reference documents.
//     Needs no corpus statistics.
//   - Trad: Robertson/Sparck-Jones relevance weight scaled by in-set
//     document frequency (Robertson's offer weight). The default.
//   - Bo1: Bose-Einstein divergence from randomness, as used for pseudo
//     relevance feedback.
package weight

import "github.com/hupe1980/rexgo/termlist"

// CollectionStats supplies the corpus-wide counts weighting schemes need.
// It is satisfied by corpus.Index.
type CollectionStats interface {
	// DocCount returns the number of documents in the corpus.
	DocCount() uint32
}

// TermStats extends CollectionStats with per-term collection frequencies,
// for schemes that model how often a term occurs in the corpus overall.
type TermStats interface {
	CollectionStats

	// CollFreq returns the total occurrence count of the term across the
	// whole corpus.
	CollFreq(term string) uint64
}

// Engine scores candidate expansion terms.
type Engine interface {
	// Reset clears statistics gathered for the previous term.
	Reset()
	// Collect gathers statistics for term from the stream's current
	// position.
	Collect(pos termlist.Position, term string)
	// Weight returns the score of the term collected last.
	Weight() float64
}
