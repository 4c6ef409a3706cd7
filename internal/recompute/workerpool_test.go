package recompute

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		numTasks   int
		numWorkers int
		failEvery  int
	}{
		{
			name:       "runs every task",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:       "failing tasks do not stop the pool",
			numTasks:   4,
			numWorkers: 2,
			failEvery:  2,
		},
		{
			name:       "non-positive size falls back to one worker",
			numTasks:   3,
			numWorkers: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)

			var mu sync.Mutex
			executed := 0
			for i := 0; i < tt.numTasks; i++ {
				i := i
				err := wp.AddTask(context.Background(), func() error {
					mu.Lock()
					executed++
					mu.Unlock()
					if tt.failEvery > 0 && i%tt.failEvery == 0 {
						return errors.New("task failed")
					}
					return nil
				})
				require.NoError(t, err)
			}
			wp.Close()

			assert.Equal(t, tt.numTasks, executed)
		})
	}
}

func TestWorkerPool_AddTaskCanceled(t *testing.T) {
	wp := &WorkerPool{pool: make(chan Task)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error {
		t.Error("task should not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
