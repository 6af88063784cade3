package autohide

import "time"

// Ticker is the cancel handle of a running tick loop
type Ticker interface {
	Stop()
}

type intervalTicker struct {
	ticker *time.Ticker
	done   chan struct{}
}

// StartTicker invokes fn at a fixed interval until Stop is called. fn runs
// on the ticker goroutine; callers that need a particular thread wrap fn
// accordingly.
func StartTicker(interval time.Duration, fn func()) Ticker {
	t := &intervalTicker{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-t.ticker.C:
				fn()
			case <-t.done:
				return
			}
		}
	}()

	return t
}

// Stop ends the tick loop. It does not wait for an in-flight fn to return
// and must be called at most once.
func (t *intervalTicker) Stop() {
	t.ticker.Stop()
	close(t.done)
}
