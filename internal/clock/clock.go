package clock

import (
	"sync"
	"time"
)

// Handle is a registration returned by Clock.Every.
type Handle interface {
	// Stop cancels the registration. It is safe to call more than once.
	Stop()
}

// Clock schedules periodic callbacks.
// Implementations call f from their own goroutine; callers serialize.
type Clock interface {
	Every(d time.Duration, f func()) Handle
}

// System returns a Clock backed by time.Ticker.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

type tickerHandle struct {
	stop chan struct{}
	once sync.Once
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

func (systemClock) Every(d time.Duration, f func()) Handle {
	h := &tickerHandle{stop: make(chan struct{})}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				// Stop may race with a pending tick.
				select {
				case <-h.stop:
					return
				default:
				}
				f()
			}
		}
	}()
	return h
}
