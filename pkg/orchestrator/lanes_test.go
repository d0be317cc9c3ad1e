package orchestrator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanesSerializePerKey(t *testing.T) {
	lanes := NewLanes(time.Minute)
	defer lanes.Close()

	const n = 20
	var mu sync.Mutex
	var order []int
	running := false
	overlapped := false

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lanes.Do(context.Background(), "conv-1", func(context.Context) error {
				mu.Lock()
				if running {
					overlapped = true
				}
				running = true
				order = append(order, i)
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				running = false
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.False(t, overlapped, "two tasks overlapped on one lane")
	assert.Len(t, order, n)
}

func TestLanesEnqueueOrder(t *testing.T) {
	lanes := NewLanes(time.Minute)
	defer lanes.Close()

	// A long first task holds the lane while the rest are enqueued one at a
	// time; they must then run in enqueue order.
	gate := make(chan struct{})
	firstQueued := make(chan struct{})
	go func() {
		close(firstQueued)
		_ = lanes.Do(context.Background(), "conv-1", func(context.Context) error {
			<-gate
			return nil
		})
	}()
	<-firstQueued
	time.Sleep(10 * time.Millisecond)

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		queued := make(chan struct{})
		go func() {
			defer wg.Done()
			close(queued)
			_ = lanes.Do(context.Background(), "conv-1", func(context.Context) error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}()
		<-queued
		// Give the goroutine time to reach the inbox before the next one.
		time.Sleep(5 * time.Millisecond)
	}

	close(gate)
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestLanesRunInParallelAcrossKeys(t *testing.T) {
	lanes := NewLanes(time.Minute)
	defer lanes.Close()

	aInside := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = lanes.Do(context.Background(), "conv-a", func(context.Context) error {
			close(aInside)
			<-release
			return nil
		})
	}()
	go func() {
		defer wg.Done()
		<-aInside
		// Lane B proceeds while lane A is blocked.
		err := lanes.Do(context.Background(), "conv-b", func(context.Context) error {
			return nil
		})
		require.NoError(t, err)
		close(release)
	}()

	wg.Wait()
}

func TestLanesReturnTaskError(t *testing.T) {
	lanes := NewLanes(time.Minute)
	defer lanes.Close()

	wantErr := context.DeadlineExceeded
	err := lanes.Do(context.Background(), "conv-1", func(context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestLanesCancelledContext(t *testing.T) {
	lanes := NewLanes(time.Minute)
	defer lanes.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	started := make(chan struct{})
	blocker := make(chan struct{})
	go func() {
		_ = lanes.Do(context.Background(), "conv-1", func(context.Context) error {
			close(started)
			<-blocker
			return nil
		})
	}()
	<-started

	// The caller stops waiting when its context dies, even though the lane
	// is busy.
	err := lanes.Do(ctx, "conv-1", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	close(blocker)
}

func TestLanesIdleEviction(t *testing.T) {
	lanes := NewLanes(20 * time.Millisecond)
	defer lanes.Close()

	require.NoError(t, lanes.Do(context.Background(), "conv-1", func(context.Context) error { return nil }))
	assert.Equal(t, 1, lanes.ActiveLanes())

	require.Eventually(t, func() bool {
		return lanes.ActiveLanes() == 0
	}, 2*time.Second, 10*time.Millisecond)

	// A fresh task after eviction spins a new lane.
	require.NoError(t, lanes.Do(context.Background(), "conv-1", func(context.Context) error { return nil }))
}
