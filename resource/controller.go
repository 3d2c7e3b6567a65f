// Package resource provides admission control for background expansion
// work. Relevance feedback jobs typically run alongside live query
// traffic; the controller bounds how many run at once and how fast new
// ones may start, so a burst of feedback jobs cannot starve searches.
package resource

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds admission limits.
type Config struct {
	// MaxConcurrentJobs is the maximum number of expansion jobs running
	// at once. If 0, defaults to the number of CPUs.
	MaxConcurrentJobs int64

	// JobsPerSec caps how fast new jobs may start.
	// If 0, job starts are not paced.
	JobsPerSec float64
}

// Controller admits expansion jobs against the configured limits.
type Controller struct {
	cfg Config

	jobSem     *semaphore.Weighted
	jobLimiter *rate.Limiter // nil if unpaced
	inFlight   atomic.Int64
}

// NewController creates a new admission controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentJobs <= 0 {
		cfg.MaxConcurrentJobs = int64(runtime.NumCPU())
	}

	c := &Controller{
		cfg:    cfg,
		jobSem: semaphore.NewWeighted(cfg.MaxConcurrentJobs),
	}

	if cfg.JobsPerSec > 0 {
		c.jobLimiter = rate.NewLimiter(rate.Limit(cfg.JobsPerSec), 1)
	}

	return c
}

// Acquire reserves a job slot, blocking until one is free and the start
// rate allows another job, or until ctx is canceled.
func (c *Controller) Acquire(ctx context.Context) error {
	if err := c.jobSem.Acquire(ctx, 1); err != nil {
		return err
	}

	if c.jobLimiter != nil {
		if err := c.jobLimiter.Wait(ctx); err != nil {
			c.jobSem.Release(1)
			return err
		}
	}

	c.inFlight.Add(1)

	return nil
}

// TryAcquire reserves a job slot without blocking. Returns false if all
// slots are busy or the start rate does not allow another job yet.
func (c *Controller) TryAcquire() bool {
	if !c.jobSem.TryAcquire(1) {
		return false
	}

	if c.jobLimiter != nil && !c.jobLimiter.Allow() {
		c.jobSem.Release(1)
		return false
	}

	c.inFlight.Add(1)

	return true
}

// Release returns a job slot.
func (c *Controller) Release() {
	c.inFlight.Add(-1)
	c.jobSem.Release(1)
}

// InFlight returns the number of jobs currently admitted.
func (c *Controller) InFlight() int64 {
	return c.inFlight.Load()
}
