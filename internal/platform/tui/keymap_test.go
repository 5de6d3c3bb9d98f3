package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		role   core.Role
		action core.Action
	}{
		{"w moves chicken up", runeKey('w'), core.RoleA, core.ActionUp},
		{"d moves chicken right", runeKey('d'), core.RoleA, core.ActionRight},
		{"space reveals for chicken", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.RoleA, core.ActionReveal},
		{"1 readies chicken", runeKey('1'), core.RoleA, core.ActionReady},
		{"left moves banana", tea.KeyMsg{Type: tea.KeyLeft}, core.RoleB, core.ActionLeft},
		{"enter reveals for banana", tea.KeyMsg{Type: tea.KeyEnter}, core.RoleB, core.ActionReveal},
		{"2 readies banana", runeKey('2'), core.RoleB, core.ActionReady},
		{"n deals", runeKey('n'), core.RoleNone, core.ActionStart},
		{"r restarts", runeKey('r'), core.RoleNone, core.ActionRestart},
		{"q quits", runeKey('q'), core.RoleNone, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.RoleNone, core.ActionQuit},
		{"unbound key", runeKey('z'), core.RoleNone, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, action := km.MapKey(tt.msg)
			if role != tt.role || action != tt.action {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), role, action, tt.role, tt.action)
			}
		})
	}
}

func TestMapKeyToMultiFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewMultiInputFrame()

	if km.MapKeyToMultiFrame(runeKey('a'), &frame) {
		t.Fatal("a reported quit")
	}
	km.MapKeyToMultiFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame)
	km.MapKeyToMultiFrame(runeKey('r'), &frame)

	if a := frame.Role(core.RoleA); !a.Has(core.ActionLeft) || !a.Has(core.ActionRestart) {
		t.Errorf("seat A frame = %v, want left and restart", a.Actions)
	}
	if b := frame.Role(core.RoleB); !b.Has(core.ActionDown) || b.Has(core.ActionLeft) {
		t.Errorf("seat B frame = %v, want only down", b.Actions)
	}
	if !km.MapKeyToMultiFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
