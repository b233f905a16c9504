package clock

import (
	"sync"
	"time"
)

// Fake is a Clock driven by Advance. Callbacks run synchronously on the
// goroutine calling Advance, never while the Fake's own lock is held.
type Fake struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	entries []*fakeEntry
}

type fakeEntry struct {
	fake    *Fake
	seq     int
	period  time.Duration
	next    time.Duration
	f       func()
	stopped bool
}

func (e *fakeEntry) Stop() {
	e.fake.mu.Lock()
	defer e.fake.mu.Unlock()
	e.stopped = true
}

// NewFake returns a Fake at virtual time zero.
func NewFake() *Fake {
	return &Fake{}
}

// Every registers f to run every d of virtual time.
func (c *Fake) Every(d time.Duration, f func()) Handle {
	if d <= 0 {
		panic("clock: non-positive interval")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	e := &fakeEntry{fake: c, seq: c.seq, period: d, next: c.now + d, f: f}
	c.entries = append(c.entries, e)
	return e
}

// Now returns the elapsed virtual time.
func (c *Fake) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Active reports how many registrations have not been stopped.
func (c *Fake) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if !e.stopped {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, firing every callback that
// comes due on the way in time order. Ties fire in registration order.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		e := c.nextDue(target)
		if e == nil {
			c.now = target
			c.prune()
			c.mu.Unlock()
			return
		}
		c.now = e.next
		e.next += e.period
		f := e.f
		c.mu.Unlock()

		f()
	}
}

func (c *Fake) nextDue(target time.Duration) *fakeEntry {
	var due *fakeEntry
	for _, e := range c.entries {
		if e.stopped || e.next > target {
			continue
		}
		if due == nil || e.next < due.next || (e.next == due.next && e.seq < due.seq) {
			due = e
		}
	}
	return due
}

func (c *Fake) prune() {
	kept := c.entries[:0]
	for _, e := range c.entries {
		if !e.stopped {
			kept = append(kept, e)
		}
	}
	c.entries = kept
}
