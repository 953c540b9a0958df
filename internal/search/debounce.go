package search

import (
	"sync"
	"time"
)

type pending struct {
	timer *time.Timer
	seq   uint64
}

// Debouncer coalesces rapid calls per key, running only the last one
// after the key has been quiet for the configured delay.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	seq     uint64
	pending map[string]pending
	stopped bool
}

// NewDebouncer creates a debouncer. A non-positive delay runs calls immediately.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		pending: make(map[string]pending),
	}
}

// Do schedules fn for key, replacing any call still waiting for that key
func (d *Debouncer) Do(key string, fn func()) {
	if d.delay <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
	}

	d.seq++
	seq := d.seq
	timer := time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current, ok := d.pending[key]
		if !ok || current.seq != seq {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()

		fn()
	})
	d.pending[key] = pending{timer: timer, seq: seq}
}

// Pending returns the number of keys with a scheduled call
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels every scheduled call; later calls to Do are ignored
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
	d.stopped = true
}
