package rexgo

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/rexgo/corpus"
	"github.com/hupe1980/rexgo/rset"
	"github.com/hupe1980/rexgo/termlist"
	"github.com/hupe1980/rexgo/weight"
)

// Candidate is one proposed expansion term with its weight. Immutable.
type Candidate struct {
	// Term is the proposed expansion term.
	Term string

	// Weight is the term's discriminating value across the reference
	// documents, as computed by the weighting engine.
	Weight float64
}

// Better reports whether c ranks ahead of other: higher weight first,
// lexicographically smaller term on ties. This is the total order of the
// whole engine; the selector's threshold and the final result order both
// derive from it.
func (c Candidate) Better(other Candidate) bool {
	if c.Weight != other.Weight {
		return c.Weight > other.Weight
	}

	return c.Term < other.Term
}

// Expander runs query expansion against a single corpus. It holds no
// per-request state, so one Expander may serve any number of concurrent
// Expand calls.
type Expander struct {
	idx           corpus.Index
	logger        *Logger
	metrics       MetricsCollector
	maxConcurrent int64
}

// New creates an Expander reading from the given corpus index. The index
// is borrowed, not owned; closing it is the caller's business.
func New(idx corpus.Index, optFns ...Option) (*Expander, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}

	o := applyOptions(optFns)

	return &Expander{
		idx:           idx,
		logger:        o.logger,
		metrics:       o.metricsCollector,
		maxConcurrent: o.maxConcurrent,
	}, nil
}

// expandRequest carries the parameters of one expansion run.
type expandRequest struct {
	set       *rset.Set
	maxSize   int
	minWeight float64
	decider   func(term string) bool
	engine    weight.Engine
}

// expand runs the expansion pipeline to completion: merge the reference
// documents' term lists, score every candidate, keep the best maxSize.
//
// Contract violations (nil or empty reference set, maxSize < 1) panic;
// they are caller bugs, not runtime conditions. IO failures are returned
// after all partially opened term lists have been closed.
func (e *Expander) expand(ctx context.Context, req expandRequest) (*Result, error) {
	if req.maxSize < 1 {
		panic("rexgo: expand max size must be at least 1")
	}

	if req.set == nil || req.set.IsEmpty() {
		panic("rexgo: expand with empty reference set")
	}

	start := time.Now()

	result, err := e.expandTree(ctx, req)

	e.metrics.RecordExpand(req.maxSize, req.set.Len(), time.Since(start), err)
	e.logger.LogExpand(ctx, req.maxSize, req.set.Len(), result, err)

	if err != nil {
		return nil, translateError(err)
	}

	return result, nil
}

func (e *Expander) expandTree(ctx context.Context, req expandRequest) (*Result, error) {
	root, err := e.buildTree(req.set)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = root.Close()
	}()

	engine := req.engine
	if engine == nil {
		engine = weight.NewTrad(e.idx, req.set.Len())
	}

	sel := newSelector(req.maxSize, req.minWeight)

	var candidateCount uint64

	for {
		root = termlist.Advance(root)
		if root.AtEnd() {
			break
		}

		term := root.Term()
		if req.decider != nil && !req.decider(term) {
			// Rejected terms are invisible: not counted, not scored.
			continue
		}

		candidateCount++

		engine.Reset()
		engine.Collect(root, term)

		sel.offer(Candidate{Term: term, Weight: engine.Weight()})
	}

	result := &Result{}
	result.populate(sel.finish(), candidateCount)

	return result, nil
}

// buildTree opens one term list per reference document and merges them
// into a single union tree. If any open fails, every list opened so far is
// closed before the error is returned; a failed build leaks nothing.
func (e *Expander) buildTree(set *rset.Set) (termlist.TermList, error) {
	lists := make([]termlist.TermList, 0, set.Len())

	for id := range set.All() {
		tl, err := e.idx.OpenTermList(id)
		if err != nil {
			for _, opened := range lists {
				err = errors.Join(err, opened.Close())
			}

			return nil, err
		}

		lists = append(lists, tl)
	}

	return termlist.Merge(lists), nil
}
