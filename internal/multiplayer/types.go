// Package multiplayer runs a tile game as a single-goroutine event loop.
// Player actions arrive on a channel and are applied in arrival order;
// a ticker drives the game clock; every change is published to sessions.
package multiplayer

import "github.com/google/uuid"

// SessionID uniquely identifies a participant's session.
type SessionID string

// MatchID uniquely identifies a running match.
type MatchID string

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// NewMatchID returns a random match identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// MatchMode describes who sits in the two seats.
type MatchMode int

const (
	// MatchModeLocal is two humans sharing one keyboard.
	MatchModeLocal MatchMode = iota

	// MatchModeVsBot is one human against a bot.
	MatchModeVsBot

	// MatchModeBots is two bots, used by headless simulation.
	MatchModeBots
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeLocal:
		return "Local"
	case MatchModeVsBot:
		return "vs Bot"
	case MatchModeBots:
		return "Bots"
	default:
		return "Unknown"
	}
}
