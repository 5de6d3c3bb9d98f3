package multiplayer

import (
	"math/rand"

	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
)

// Bot plays one seat by picking uniformly among hidden tiles. It readies
// up and deals boards when the phase calls for it.
type Bot struct {
	role    core.Role
	rng     *rand.Rand
	session *ChannelSession
	readied bool
}

// NewBot creates a bot for role with its own seeded RNG.
func NewBot(role core.Role, seed int64) *Bot {
	return &Bot{
		role:    role,
		rng:     rand.New(rand.NewSource(seed)),
		session: NewChannelSession(NewSessionID(), 16),
	}
}

// Session returns the handle to seat in a match.
func (b *Bot) Session() *ChannelSession {
	return b.session
}

// Play reacts to match events until the match ends or the session closes.
// Run it in its own goroutine.
func (b *Bot) Play(m *Match) {
	for {
		select {
		case evt := <-b.session.Events():
			switch e := evt.(type) {
			case SnapshotEvent:
				if in, ok := b.Decide(e.Snapshot); ok {
					m.Submit(b.role, in)
				}
			case MatchEndedEvent:
				return
			}
		case <-b.session.Done():
			return
		case <-m.Done():
			return
		}
	}
}

// Decide returns the bot's next action for a snapshot, if any.
func (b *Bot) Decide(s core.Snapshot) (core.InputFrame, bool) {
	in := core.NewInputFrame()
	if s.Phase != core.PhaseWaiting {
		b.readied = false
	}

	switch s.Phase {
	case core.PhaseSetup:
		// Only a game without a board needs dealing; seat A deals.
		if s.Size == 0 && b.role == core.RoleA {
			in.Set(core.ActionStart)
			return in, true
		}
	case core.PhaseWaiting:
		if !b.readied && !s.Players.Get(b.role).Ready {
			b.readied = true
			in.Set(core.ActionReady)
			return in, true
		}
	case core.PhasePlaying:
		if s.Current != core.RoleNone && s.Current != b.role {
			return in, false
		}
		hidden := hiddenTiles(s)
		if len(hidden) == 0 {
			return in, false
		}
		pick := hidden[b.rng.Intn(len(hidden))]
		in.RevealAt(pick.Row, pick.Col)
		return in, true
	}
	return in, false
}

func hiddenTiles(s core.Snapshot) []core.Coord {
	var out []core.Coord
	for r, row := range s.Grid {
		for c, cell := range row {
			if !cell.Revealed {
				out = append(out, core.Coord{Row: r, Col: c})
			}
		}
	}
	return out
}
