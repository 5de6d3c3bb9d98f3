package race

import (
	"testing"
	"time"
)

func TestTimerCountsOnlyWhileRunning(t *testing.T) {
	var tm Timer
	tm.Tick()
	if tm.Elapsed() != 0 {
		t.Fatalf("Elapsed() before Start = %d, want 0", tm.Elapsed())
	}

	tm.Start()
	for i := 0; i < 5; i++ {
		tm.Tick()
	}
	if tm.Elapsed() != 5 {
		t.Errorf("Elapsed() = %d, want 5", tm.Elapsed())
	}

	tm.Stop()
	tm.Tick()
	tm.Tick()
	if tm.Elapsed() != 5 {
		t.Errorf("Elapsed() after Stop = %d, want 5 (frozen)", tm.Elapsed())
	}
	if tm.Running() {
		t.Error("Running() after Stop = true")
	}

	tm.Start()
	tm.Reset()
	if tm.Elapsed() != 0 || tm.Running() {
		t.Errorf("after Reset elapsed=%d running=%v, want 0 false", tm.Elapsed(), tm.Running())
	}
}

func TestTimerSeconds(t *testing.T) {
	var tm Timer
	tm.Start()
	for i := 0; i < 123; i++ {
		tm.Tick()
	}
	if got := tm.Seconds(100 * time.Millisecond); got != 12300*time.Millisecond {
		t.Errorf("Seconds() = %v, want 12.3s", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.0s"},
		{100 * time.Millisecond, "0.1s"},
		{12300 * time.Millisecond, "12.3s"},
		{59990 * time.Millisecond, "59.9s"},
		{2 * time.Minute, "120.0s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatElapsed(tt.in); got != tt.want {
				t.Errorf("FormatElapsed(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
