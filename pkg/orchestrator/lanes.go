package orchestrator

import (
	"context"
	"sync"
	"time"
)

// laneInboxSize bounds queued events per conversation. A conversation with a
// full inbox briefly blocks the enqueuer; it cannot block other lanes.
const laneInboxSize = 16

// laneTask is one unit of work queued on a lane.
type laneTask struct {
	ctx  context.Context
	fn   func(context.Context) error
	done chan error
}

// lane is a keyed actor: one goroutine draining one conversation's inbox.
type lane struct {
	key   string
	inbox chan laneTask
}

// Lanes serializes event handling per conversation while letting different
// conversations run in parallel. Each active conversation owns a goroutine
// with an inbox; idle lanes are evicted after idleTTL.
type Lanes struct {
	mu    sync.Mutex
	lanes map[string]*lane
	idle  time.Duration
	wg    sync.WaitGroup
}

// NewLanes creates a lane registry. idleTTL controls how long an empty lane
// keeps its goroutine before eviction.
func NewLanes(idleTTL time.Duration) *Lanes {
	if idleTTL <= 0 {
		idleTTL = time.Minute
	}
	return &Lanes{
		lanes: make(map[string]*lane),
		idle:  idleTTL,
	}
}

// Do runs fn on the key's serial lane and waits for it to finish. Events
// enqueued on one key run strictly one at a time in enqueue order; fn
// observes ctx for cancellation.
func (l *Lanes) Do(ctx context.Context, key string, fn func(context.Context) error) error {
	t := laneTask{ctx: ctx, fn: fn, done: make(chan error, 1)}

	// Enqueue under the registry lock so a lane cannot be evicted between
	// lookup and send. A full inbox backs off and retries; eviction only
	// happens when an inbox is empty, so the retry always finds either the
	// same live lane or a fresh one.
	for {
		l.mu.Lock()
		ln, ok := l.lanes[key]
		if !ok {
			ln = &lane{key: key, inbox: make(chan laneTask, laneInboxSize)}
			l.lanes[key] = ln
			l.wg.Add(1)
			go l.run(ln)
		}
		select {
		case ln.inbox <- t:
			l.mu.Unlock()
			select {
			case err := <-t.done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		default:
			l.mu.Unlock()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Millisecond):
			}
		}
	}
}

// ActiveLanes returns the number of live lanes. Used by tests and health.
func (l *Lanes) ActiveLanes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lanes)
}

// Close waits for every lane to drain and exit. Callers must stop enqueuing
// first; lanes exit on their idle timers once empty.
func (l *Lanes) Close() {
	l.mu.Lock()
	for _, ln := range l.lanes {
		close(ln.inbox)
	}
	l.lanes = make(map[string]*lane)
	l.mu.Unlock()
	l.wg.Wait()
}

func (l *Lanes) run(ln *lane) {
	defer l.wg.Done()
	timer := time.NewTimer(l.idle)
	defer timer.Stop()

	for {
		select {
		case t, ok := <-ln.inbox:
			if !ok {
				return
			}
			t.done <- t.fn(t.ctx)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(l.idle)
		case <-timer.C:
			l.mu.Lock()
			if len(ln.inbox) == 0 && l.lanes[ln.key] == ln {
				delete(l.lanes, ln.key)
				l.mu.Unlock()
				return
			}
			l.mu.Unlock()
			timer.Reset(l.idle)
		}
	}
}
