package trace

import (
	"fmt"
	"sync"
	"time"
)

// Heartbeat emits a periodic event with the number of open spans while a
// long check runs. A heartbeat that keeps reporting the same open spans
// points at a file that does not finish.
type Heartbeat struct {
	stop func()
	done chan struct{}
}

// StartHeartbeat starts emitting to tracer every interval. It returns nil when
// tracing is off or interval is not positive; Stop on nil is a no-op.
func StartHeartbeat(tracer Tracer, interval time.Duration) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	quit := make(chan struct{})
	h := &Heartbeat{done: make(chan struct{})}
	var once sync.Once
	h.stop = func() { once.Do(func() { close(quit) }) }

	go func() {
		defer close(h.done)
		started := time.Now()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for beat := 1; ; beat++ {
			select {
			case <-quit:
				return
			case now := <-ticker.C:
				tracer.Emit(&Event{
					Time:   now,
					Kind:   KindHeartbeat,
					Scope:  ScopeDriver,
					GID:    goroutineID(),
					Name:   "heartbeat",
					Detail: fmt.Sprintf("#%d after %s, %d open", beat, now.Sub(started).Round(time.Millisecond), OpenSpans()),
				})
			}
		}
	}()
	return h
}

// Stop ends the heartbeat and waits for its goroutine.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.stop()
	<-h.done
}
