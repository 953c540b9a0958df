package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(v string) func() {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, v)
	}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestDebouncer_CoalescesPerKey(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	rec := &recorder{}

	d.Do("user-1", rec.record("t"))
	d.Do("user-1", rec.record("to"))
	d.Do("user-1", rec.record("tor"))
	d.Do("user-2", rec.record("bail"))

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)

	assert.ElementsMatch(t, []string{"tor", "bail"}, rec.snapshot())
	assert.Equal(t, 0, d.Pending())
}

func TestDebouncer_ZeroDelayRunsImmediately(t *testing.T) {
	d := NewDebouncer(0)
	rec := &recorder{}

	d.Do("user-1", rec.record("a"))
	d.Do("user-1", rec.record("b"))

	assert.Equal(t, []string{"a", "b"}, rec.snapshot())
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	rec := &recorder{}

	d.Do("user-1", rec.record("a"))
	d.Stop()
	d.Do("user-1", rec.record("b"))

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
	assert.Equal(t, 0, d.Pending())
}
