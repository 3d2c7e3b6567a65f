// Package rexgo provides query expansion through relevance feedback for Go.
//
// This file implements the fluent request builder for expansion runs.
package rexgo

import (
	"context"

	"github.com/hupe1980/rexgo/rset"
	"github.com/hupe1980/rexgo/weight"
)

// DefaultMaxSize is the number of expansion terms proposed when the caller
// does not set one.
const DefaultMaxSize = 10

// Expand creates a fluent builder for expanding against the given
// reference set.
//
// Example:
//
//	result, err := ex.Expand(rset.New(12, 97, 204)).
//	    MaxSize(20).
//	    MinWeight(0).
//	    Decider(func(term string) bool { return len(term) > 2 }).
//	    Run(ctx)
func (e *Expander) Expand(set *rset.Set) *ExpandBuilder {
	return &ExpandBuilder{
		expander: e,
		set:      set,
		maxSize:  DefaultMaxSize,
	}
}

// ExpandBuilder is a fluent builder for one expansion run. Builders are
// single-use; configure one, call Run, discard it.
type ExpandBuilder struct {
	expander  *Expander
	set       *rset.Set
	maxSize   int
	minWeight float64
	decider   func(term string) bool
	engine    weight.Engine
}

// MaxSize sets the number of expansion terms to propose.
// Default: DefaultMaxSize.
func (b *ExpandBuilder) MaxSize(k int) *ExpandBuilder {
	b.maxSize = k
	return b
}

// MinWeight sets the initial weight threshold. A candidate must strictly
// exceed it to be retained; zero and negative thresholds are allowed.
// Default: 0, which drops unweighted noise terms.
func (b *ExpandBuilder) MinWeight(w float64) *ExpandBuilder {
	b.minWeight = w
	return b
}

// Decider sets a term filter consulted before scoring. Terms it rejects
// are skipped entirely: neither scored nor counted. Useful for stop words
// or terms already present in the query. The function must be pure; it is
// called once per distinct term.
func (b *ExpandBuilder) Decider(fn func(term string) bool) *ExpandBuilder {
	b.decider = fn
	return b
}

// Weighting sets the weighting engine that scores candidates. The engine
// is driven through its full reset/collect/score cycle per term and must
// not be shared with a concurrent run.
// Default: weight.NewTrad over the expander's corpus.
func (b *ExpandBuilder) Weighting(engine weight.Engine) *ExpandBuilder {
	b.engine = engine
	return b
}

// Run executes the expansion and returns the populated, immutable result.
//
// A nil or empty reference set and a max size below 1 are contract
// violations and panic. Failures opening a document's term list are
// returned as errors; the partially built merge tree is fully released
// first.
func (b *ExpandBuilder) Run(ctx context.Context) (*Result, error) {
	return b.expander.expand(ctx, expandRequest{
		set:       b.set,
		maxSize:   b.maxSize,
		minWeight: b.minWeight,
		decider:   b.decider,
		engine:    b.engine,
	})
}

// MustRun executes the expansion, panicking on error. Use this only in
// tests or when the corpus is known to be static.
func (b *ExpandBuilder) MustRun(ctx context.Context) *Result {
	result, err := b.Run(ctx)
	if err != nil {
		panic(err)
	}

	return result
}
