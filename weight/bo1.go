package weight

import (
	"math"

	"github.com/hupe1980/rexgo/termlist"
)

// Bo1 scores a term with the Bose-Einstein divergence from randomness
// model, the scheme commonly used for pseudo relevance feedback:
//
//	w(t) = tfx * log2((1+l)/l) + log2(1+l)    with l = F/N
//
// where tfx is the term's combined occurrence count in the reference
// documents, F its total occurrence count in the corpus and N the corpus
// size. It rewards terms that occur in the reference documents far more
// often than a random distribution of their corpus occurrences would
// predict.
type Bo1 struct {
	corpus TermStats

	stats termlist.Stats
	term  string
}

// NewBo1 creates a Bose-Einstein weighting engine. The corpus statistics
// must include per-term collection frequencies; corpus/memory provides
// them.
func NewBo1(corpus TermStats) *Bo1 {
	return &Bo1{corpus: corpus}
}

// Reset implements Engine.
func (b *Bo1) Reset() {
	b.stats = termlist.Stats{}
	b.term = ""
}

// Collect implements Engine.
func (b *Bo1) Collect(pos termlist.Position, term string) {
	pos.AccumulateStats(&b.stats)
	b.term = term
}

// Weight implements Engine.
func (b *Bo1) Weight() float64 {
	n := float64(b.corpus.DocCount())
	f := float64(b.corpus.CollFreq(b.term))
	if n == 0 || f == 0 {
		return 0
	}

	l := f / n
	tfx := float64(b.stats.FreqSum)

	return tfx*math.Log2((1+l)/l) + math.Log2(1+l)
}
