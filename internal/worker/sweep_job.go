package worker

import (
	"context"

	"github.com/osmundr/GielinorBot_Go/internal/logger"
)

// Sweeper removes expired entries from a cache and reports how many were dropped.
type Sweeper interface {
	Sweep() int
}

// CacheSweepJob evicts expired drop table cache entries when run
type CacheSweepJob struct {
	cache Sweeper
}

// NewCacheSweepJob creates a cache sweep job for the given cache
func NewCacheSweepJob(cache Sweeper) *CacheSweepJob {
	return &CacheSweepJob{cache: cache}
}

// Process runs one sweep pass
func (j *CacheSweepJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCacheSweepStarting)

	removed := j.cache.Sweep()

	log.Info(LogMsgCacheSweepCompleted, "removed", removed)
	return nil
}
