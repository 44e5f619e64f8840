package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSweeper struct {
	calls   int
	removed int
}

func (f *fakeSweeper) Sweep() int {
	f.calls++
	return f.removed
}

func TestCacheSweepJob(t *testing.T) {
	sweeper := &fakeSweeper{removed: 3}
	job := NewCacheSweepJob(sweeper)

	err := job.Process(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, sweeper.calls)
}
