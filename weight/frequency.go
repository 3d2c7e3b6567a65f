package weight

import "github.com/hupe1980/rexgo/termlist"

// Frequency scores a term by its combined occurrence count across the
// reference documents. It needs no corpus statistics, which makes it a
// useful baseline and a cheap choice for tiny corpora where probabilistic
// estimates are unstable.
type Frequency struct {
	stats termlist.Stats
}

// NewFrequency creates a raw-frequency weighting engine.
func NewFrequency() *Frequency {
	return &Frequency{}
}

// Reset implements Engine.
func (f *Frequency) Reset() {
	f.stats = termlist.Stats{}
}

// Collect implements Engine.
func (f *Frequency) Collect(pos termlist.Position, _ string) {
	pos.AccumulateStats(&f.stats)
}

// Weight implements Engine.
func (f *Frequency) Weight() float64 {
	return float64(f.stats.FreqSum)
}
