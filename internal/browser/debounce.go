package browser

import (
	"sync"
	"time"
)

// DefaultSettleDelay is how long search input must settle before the
// filter re-runs.
const DefaultSettleDelay = 300 * time.Millisecond

// Debouncer runs the most recently scheduled function once the settle
// delay elapses without another Schedule call. Re-scheduling cancels the
// prior pending action.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending action.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
