// Package rexgo provides query expansion through relevance feedback for Go.
//
// This file implements concurrent batch expansion over independent
// reference sets.
package rexgo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rexgo/resource"
	"github.com/hupe1980/rexgo/rset"
	"github.com/hupe1980/rexgo/weight"
)

// BatchRequest is one expansion request inside a batch. The zero values of
// MaxSize and Weighting fall back to the same defaults as ExpandBuilder.
type BatchRequest struct {
	// Set is the reference set to expand against. Must be non-empty.
	Set *rset.Set

	// MaxSize is the number of expansion terms to propose.
	// If 0, DefaultMaxSize is used.
	MaxSize int

	// MinWeight is the initial weight threshold.
	MinWeight float64

	// Decider optionally filters terms before scoring.
	Decider func(term string) bool

	// Weighting optionally overrides the weighting engine. Engines are
	// stateful; each request needs its own.
	Weighting weight.Engine
}

// BatchResult pairs one request's outcome with its position in the batch.
type BatchResult struct {
	// Result is the expansion outcome; nil if Err is set.
	Result *Result

	// Err is the failure of this request, if any.
	Err error
}

// BatchExpand runs the given requests concurrently, each with fully
// isolated state, bounded by the expander's concurrency limit (see
// WithMaxConcurrent). Results are returned in request order; a failed
// request carries its error without aborting the rest of the batch.
//
// Returns an error only when ctx is canceled before all requests were
// admitted.
func (e *Expander) BatchExpand(ctx context.Context, reqs []BatchRequest) ([]BatchResult, error) {
	start := time.Now()

	ctl := resource.NewController(resource.Config{
		MaxConcurrentJobs: e.maxConcurrent,
	})

	results := make([]BatchResult, len(reqs))

	g, ctx := errgroup.WithContext(ctx)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctl.Acquire(ctx); err != nil {
				results[i] = BatchResult{Err: err}
				return err
			}
			defer ctl.Release()

			result, err := e.expand(ctx, expandRequest{
				set:       req.Set,
				maxSize:   orDefault(req.MaxSize, DefaultMaxSize),
				minWeight: req.MinWeight,
				decider:   req.Decider,
				engine:    req.Weighting,
			})

			// Per-request failures stay in the slot; only admission
			// failures abort the group.
			results[i] = BatchResult{Result: result, Err: err}

			return nil
		})
	}

	err := g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	e.metrics.RecordBatchExpand(len(reqs), failed, time.Since(start))
	e.logger.LogBatchExpand(ctx, len(reqs), failed)

	return results, err
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}

	return v
}
