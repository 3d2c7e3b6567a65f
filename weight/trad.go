package weight

import (
	"math"

	"github.com/hupe1980/rexgo/termlist"
)

// Trad scores a term with the Robertson/Sparck-Jones relevance weight,
// scaled by the number of reference documents containing the term
// (Robertson's offer weight):
//
//	w(t) = r * log( (r+0.5)(N-n-R+r+0.5) / ((n-r+0.5)(R-r+0.5)) )
//
// where N is the corpus size, n the term's document frequency, R the
// reference set size and r the number of reference documents containing
// the term. Terms concentrated in the reference set but rare elsewhere
// score highest.
type Trad struct {
	docCount float64
	refSize  float64

	stats   termlist.Stats
	docFreq uint32
}

// NewTrad creates the traditional probabilistic weighting engine for a
// reference set of refSize documents drawn from the given corpus.
func NewTrad(stats CollectionStats, refSize int) *Trad {
	return &Trad{
		docCount: float64(stats.DocCount()),
		refSize:  float64(refSize),
	}
}

// Reset implements Engine.
func (t *Trad) Reset() {
	t.stats = termlist.Stats{}
	t.docFreq = 0
}

// Collect implements Engine.
func (t *Trad) Collect(pos termlist.Position, _ string) {
	pos.AccumulateStats(&t.stats)
	t.docFreq = pos.DocFreq()
}

// Weight implements Engine.
func (t *Trad) Weight() float64 {
	r := float64(t.stats.RefDocFreq)
	n := float64(t.docFreq)

	// r <= n and r <= R hold whenever the reported document frequencies
	// are honest, so both factors stay positive.
	num := (r + 0.5) * (t.docCount - n - t.refSize + r + 0.5)
	den := (n - r + 0.5) * (t.refSize - r + 0.5)

	return r * math.Log(num/den)
}
