package multiplayer

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
	"github.com/vovakirdan/tui-arcade-tiles/internal/registry"
)

// MatchResult contains the outcome of a finished match.
type MatchResult struct {
	MatchID MatchID
	GameID  string
	Reason  MatchEndReason
	Winner  core.Role
	ScoreA  int
	ScoreB  int
	Ticks   uint64 // loop ticks run
	Elapsed uint64 // race timer ticks; zero for duel
}

// Match owns one game and applies every action to it from a single
// goroutine, so no mutation ever interleaves with another.
type Match struct {
	id       MatchID
	mode     MatchMode
	game     registry.Game
	tickRate int
	log      *log.Logger

	seats       map[core.Role]SessionHandle
	subscribers *SessionRegistry

	inputs     chan PlayerInputMsg
	disconnect chan core.Role
	tick       uint64
	done       chan struct{}
	doneOnce   sync.Once
	lastPhase  core.Phase
}

// NewMatch wraps a game that has already been Reset.
func NewMatch(game registry.Game, mode MatchMode, tickRate int, logger *log.Logger) *Match {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}
	id := NewMatchID()
	return &Match{
		id:          id,
		mode:        mode,
		game:        game,
		tickRate:    tickRate,
		log:         logger.With("match", string(id)[:8], "game", game.ID()),
		seats:       make(map[core.Role]SessionHandle),
		subscribers: NewSessionRegistry(),
		inputs:      make(chan PlayerInputMsg, 64),
		disconnect:  make(chan core.Role, 2),
		done:        make(chan struct{}),
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns who sits in the seats.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// Seat subscribes a session as the player of role. If the session ends
// while the match runs, that role forfeits. Call before Run.
func (m *Match) Seat(role core.Role, s SessionHandle) {
	m.seats[role] = s
	m.subscribers.Register(s)
}

// Subscribe adds a spectator session.
func (m *Match) Subscribe(s SessionHandle) {
	m.subscribers.Register(s)
}

// Submit queues an action from role. It never blocks; it reports false
// when the queue is full or the match is over.
func (m *Match) Submit(role core.Role, in core.InputFrame) bool {
	select {
	case <-m.done:
		return false
	default:
	}
	select {
	case m.inputs <- PlayerInputMsg{Role: role, Input: in.Clone()}:
		return true
	default:
		m.log.Warn("input queue full, dropping action", "role", role)
		return false
	}
}

// Run starts the authoritative loop and blocks until the game finishes,
// a seated session ends, or Stop is called. onComplete, if set, receives
// the result before Run returns.
func (m *Match) Run(onComplete func(MatchResult)) {
	defer m.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(m.tickRate))
	defer ticker.Stop()

	go m.monitorSeats()

	m.announce()
	snap := m.game.Snapshot()
	m.lastPhase = snap.Phase
	m.publish(snap)

	finish := func(r MatchResult) {
		m.log.Info("match ended", "reason", r.Reason, "winner", r.Winner, "score_a", r.ScoreA, "score_b", r.ScoreB)
		m.subscribers.Broadcast(MatchEndedEvent{Result: r})
		if onComplete != nil {
			onComplete(r)
		}
	}

	for {
		select {
		case msg := <-m.inputs:
			snap, changed := m.game.Apply(msg.Role, msg.Input)
			if !changed {
				continue
			}
			m.log.Debug("action applied", "role", msg.Role, "phase", snap.Phase)
			m.observe(snap)
			if snap.Phase == core.PhaseFinished {
				finish(m.result(MatchEndReasonCompleted, snap.Winner))
				return
			}

		case <-ticker.C:
			m.tick++
			res := m.game.Step(core.NewMultiInputFrame())
			if !res.Changed {
				continue
			}
			snap := m.game.Snapshot()
			m.observe(snap)
			if res.State.GameOver {
				finish(m.result(MatchEndReasonCompleted, res.State.Winner))
				return
			}

		case role := <-m.disconnect:
			m.log.Warn("seated session left", "role", role)
			finish(m.result(MatchEndReasonDisconnect, role.Other()))
			return

		case <-m.done:
			finish(m.result(MatchEndReasonCancelled, core.RoleNone))
			return
		}
	}
}

func (m *Match) announce() {
	m.log.Info("match started", "mode", m.mode, "sessions", m.subscribers.Count())
	for role, s := range m.seats {
		s.Send(MatchStartedEvent{MatchID: m.id, GameID: m.game.ID(), Role: role})
	}
}

// observe logs phase transitions and publishes the snapshot.
func (m *Match) observe(snap core.Snapshot) {
	if snap.Phase != m.lastPhase {
		m.log.Info("phase changed", "from", m.lastPhase, "to", snap.Phase)
		m.lastPhase = snap.Phase
	}
	m.publish(snap)
}

func (m *Match) publish(snap core.Snapshot) {
	m.subscribers.Broadcast(SnapshotEvent{MatchID: m.id, Tick: m.tick, Snapshot: snap})
}

func (m *Match) result(reason MatchEndReason, winner core.Role) MatchResult {
	snap := m.game.Snapshot()
	return MatchResult{
		MatchID: m.id,
		GameID:  m.game.ID(),
		Reason:  reason,
		Winner:  winner,
		ScoreA:  snap.Players.A.Score,
		ScoreB:  snap.Players.B.Score,
		Ticks:   m.tick,
		Elapsed: snap.Elapsed,
	}
}

func (m *Match) monitorSeats() {
	var wg sync.WaitGroup
	for role, s := range m.seats {
		role, s := role, s
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case <-s.Done():
				m.subscribers.Unregister(s.ID())
				select {
				case m.disconnect <- role:
				default:
				}
			case <-m.done:
			}
		}()
	}
	wg.Wait()
}

// Stop ends the match. Safe to call multiple times and from any goroutine.
func (m *Match) Stop() {
	m.doneOnce.Do(func() {
		close(m.done)
	})
}

// Done returns a channel closed once the match has stopped.
func (m *Match) Done() <-chan struct{} {
	return m.done
}
