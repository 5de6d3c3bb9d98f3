package multiplayer

import "github.com/vovakirdan/tui-arcade-tiles/internal/core"

// SessionEvent represents an event sent from a match to a session.
type SessionEvent interface {
	sessionEvent()
}

// MatchStartedEvent is sent once when the loop begins.
type MatchStartedEvent struct {
	MatchID MatchID
	GameID  string
	Role    core.Role // seat of the receiving session; RoleNone for spectators
}

func (MatchStartedEvent) sessionEvent() {}

// SnapshotEvent carries the game state after a change.
type SnapshotEvent struct {
	MatchID  MatchID
	Tick     uint64
	Snapshot core.Snapshot
}

func (SnapshotEvent) sessionEvent() {}

// MatchEndedEvent is sent when the match ends.
type MatchEndedEvent struct {
	Result MatchResult
}

func (MatchEndedEvent) sessionEvent() {}

// MatchEndReason describes why a match ended.
type MatchEndReason int

const (
	MatchEndReasonCompleted  MatchEndReason = iota // A winner was decided
	MatchEndReasonDisconnect                       // A seated session went away
	MatchEndReasonCancelled                        // Stop was called
)

func (r MatchEndReason) String() string {
	switch r {
	case MatchEndReasonCompleted:
		return "Match completed"
	case MatchEndReasonDisconnect:
		return "Opponent disconnected"
	case MatchEndReasonCancelled:
		return "Match cancelled"
	default:
		return "Unknown"
	}
}

// PlayerInputMsg is one player's action submitted to a match.
type PlayerInputMsg struct {
	Role  core.Role
	Input core.InputFrame
}
