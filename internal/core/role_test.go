package core

import (
	"testing"

	"github.com/vovakirdan/tui-arcade-tiles/internal/board"
)

func TestRoleOtherAndTarget(t *testing.T) {
	tests := []struct {
		role   Role
		other  Role
		target board.Kind
	}{
		{RoleA, RoleB, board.TargetA},
		{RoleB, RoleA, board.TargetB},
		{RoleNone, RoleNone, board.Empty},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := tt.role.Other(); got != tt.other {
				t.Errorf("Other() = %v, want %v", got, tt.other)
			}
			if got := tt.role.Target(); got != tt.target {
				t.Errorf("Target() = %v, want %v", got, tt.target)
			}
			if tt.role != RoleNone && Owner(tt.target) != tt.role {
				t.Errorf("Owner(%v) = %v, want %v", tt.target, Owner(tt.target), tt.role)
			}
		})
	}
}

func TestPlayersKeyedAccess(t *testing.T) {
	p := NewPlayers("Ann", "Bob")
	if p.Get(RoleA).Name != "Ann" || p.Get(RoleB).Name != "Bob" {
		t.Fatalf("Get() names = %q, %q", p.Get(RoleA).Name, p.Get(RoleB).Name)
	}
	if p.Get(RoleB).Role != RoleB {
		t.Errorf("B role = %v", p.Get(RoleB).Role)
	}
	if p.Ref(RoleNone) != nil {
		t.Error("Ref(RoleNone) should be nil")
	}

	p.Ref(RoleA).Ready = true
	if p.AllReady() {
		t.Error("AllReady() with one ready = true")
	}
	p.Ref(RoleB).Ready = true
	if !p.AllReady() {
		t.Error("AllReady() with both ready = false")
	}

	copied := p.Get(RoleA)
	copied.Score = 5
	if p.A.Score != 0 {
		t.Error("Get must return a copy")
	}
}

func TestPhaseForwardOnly(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseSetup, PhaseWaiting, true},
		{PhaseSetup, PhasePlaying, true},
		{PhaseCountdownReady, PhasePlaying, true},
		{PhasePlaying, PhaseFinished, true},
		{PhaseFinished, PhaseSetup, false},
		{PhasePlaying, PhaseWaiting, false},
		{PhaseWaiting, PhaseWaiting, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanAdvanceTo(tt.to); got != tt.want {
			t.Errorf("%v.CanAdvanceTo(%v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.RevealAt(2, 3)
	c := f.Clone()
	f.Clear()

	if !c.Has(ActionReveal) {
		t.Error("clone lost action after original cleared")
	}
	if c.Target == nil || *c.Target != (Coord{Row: 2, Col: 3}) {
		t.Errorf("clone target = %v, want (2, 3)", c.Target)
	}
	if !f.Empty() || f.Target != nil {
		t.Error("Clear() left state behind")
	}
}

func TestPlayerActive(t *testing.T) {
	p := Player{Role: RoleA}
	if !p.Active() {
		t.Error("fresh player should be active")
	}
	p.Lost = true
	if p.Active() {
		t.Error("player who lost should not be active")
	}
}

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(42); got != 42 {
		t.Errorf("ResolveSeed(42) = %d, want 42", got)
	}
	if got := ResolveSeed(0); got == 0 {
		t.Error("ResolveSeed(0) should pick a time-based seed")
	}
}
