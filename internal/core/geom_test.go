package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 12, 12, true},
		{"top-left corner", 10, 10, true},
		{"just outside right", 15, 12, false},
		{"just outside bottom", 12, 15, false},
		{"outside left", 9, 12, false},
		{"outside top", 12, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestMoveCursor(t *testing.T) {
	frame := func(actions ...Action) InputFrame {
		f := NewInputFrame()
		for _, a := range actions {
			f.Set(a)
		}
		return f
	}

	tests := []struct {
		name string
		from Coord
		in   InputFrame
		want Coord
	}{
		{"no input", Coord{2, 2}, frame(), Coord{2, 2}},
		{"up", Coord{2, 2}, frame(ActionUp), Coord{1, 2}},
		{"diagonal", Coord{2, 2}, frame(ActionDown, ActionRight), Coord{3, 3}},
		{"clamped at top-left", Coord{0, 0}, frame(ActionUp, ActionLeft), Coord{0, 0}},
		{"clamped at bottom-right", Coord{3, 3}, frame(ActionDown, ActionRight), Coord{3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveCursor(tt.from, tt.in, 4); got != tt.want {
				t.Errorf("MoveCursor(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}
