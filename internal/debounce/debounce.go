// Package debounce collapses bursts of events into a single delayed call.
package debounce

import (
	"sync"
	"time"
)

// DefaultWait is the quiet interval used for input changes.
const DefaultWait = 300 * time.Millisecond

// Debouncer schedules keyed tasks. Scheduling a task supersedes the pending
// task with the same key, so only the last one in a burst runs, once the
// key has been quiet for the wait interval.
type Debouncer struct {
	wait time.Duration

	mu      sync.Mutex
	pending map[string]*task
	seq     uint64
	stopped bool
}

type task struct {
	timer *time.Timer
	gen   uint64
}

// New returns a Debouncer with the given quiet interval. A non-positive wait
// uses DefaultWait.
func New(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer{
		wait:    wait,
		pending: make(map[string]*task),
	}
}

// Wait returns the quiet interval.
func (d *Debouncer) Wait() time.Duration { return d.wait }

// Schedule arranges for fn to run after the quiet interval unless another
// task is scheduled under key first. It is a no-op after Stop.
func (d *Debouncer) Schedule(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if t, ok := d.pending[key]; ok {
		t.timer.Stop()
	}
	d.seq++
	gen := d.seq
	t := &task{gen: gen}
	t.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		cur, ok := d.pending[key]
		if !ok || cur.gen != gen {
			// Superseded after the timer had already fired.
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()
		fn()
	})
	d.pending[key] = t
}

// Cancel drops the pending task for key. It reports whether one was pending.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.pending[key]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(d.pending, key)
	return true
}

// Pending reports whether a task is waiting under key.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// Stop cancels every pending task and rejects later ones.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for key, t := range d.pending {
		t.timer.Stop()
		delete(d.pending, key)
	}
}
