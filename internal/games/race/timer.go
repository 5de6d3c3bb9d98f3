package race

import (
	"fmt"
	"time"
)

// Timer counts ticks while running. It never reads the wall clock;
// the caller's scheduler drives it through Tick.
type Timer struct {
	elapsed uint64
	running bool
}

// Start resumes counting.
func (t *Timer) Start() { t.running = true }

// Stop freezes the count.
func (t *Timer) Stop() { t.running = false }

// Reset stops the timer and zeroes it.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.running = false
}

// Tick advances the count by one if running and returns the new count.
func (t *Timer) Tick() uint64 {
	if t.running {
		t.elapsed++
	}
	return t.elapsed
}

// Elapsed returns the number of ticks counted so far.
func (t *Timer) Elapsed() uint64 { return t.elapsed }

// Running reports whether Tick currently advances the count.
func (t *Timer) Running() bool { return t.running }

// Seconds converts the count to a duration given the tick interval.
func (t *Timer) Seconds(interval time.Duration) time.Duration {
	return time.Duration(t.elapsed) * interval
}

// FormatElapsed renders a duration as seconds with one decimal, e.g. "12.3s".
func FormatElapsed(d time.Duration) string {
	tenths := d.Milliseconds() / 100
	return fmt.Sprintf("%d.%ds", tenths/10, tenths%10)
}
