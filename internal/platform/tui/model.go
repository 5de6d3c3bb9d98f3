package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
	"github.com/vovakirdan/tui-arcade-tiles/internal/multiplayer"
	"github.com/vovakirdan/tui-arcade-tiles/internal/registry"
)

// Model is the Bubble Tea model for running a tile game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	input     core.MultiInputFrame
	keyMapper *KeyMapper
	help      help.Model
	bot       *multiplayer.Bot // plays seat B when set
	log       *log.Logger
	phase     core.Phase
	quitting  bool
}

// NewModel creates a model for a game that has already been Reset.
// A non-nil bot takes seat B.
func NewModel(game registry.Game, cfg core.RuntimeConfig, bot *multiplayer.Bot, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		game:      game,
		screen:    core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH-helpHeight, 1)),
		config:    cfg,
		input:     core.NewMultiInputFrame(),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		bot:       bot,
		log:       logger,
		phase:     game.State().Phase,
	}
}

const helpHeight = 3

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToMultiFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.bot != nil {
		// The bot sees the same snapshot a human would and never uses the keyboard seat.
		m.input.SetRole(core.RoleB, core.NewInputFrame())
		if in, ok := m.bot.Decide(m.game.Snapshot()); ok {
			m.input.SetRole(core.RoleB, in)
		}
	}

	res := m.game.Step(m.input)
	if res.State.Phase != m.phase {
		m.log.Info("phase changed", "game", m.game.ID(), "from", m.phase, "to", res.State.Phase)
		if res.State.GameOver {
			snap := m.game.Snapshot()
			m.log.Info("game over", "winner", res.State.Winner,
				"score_a", snap.Players.A.Score, "score_b", snap.Players.B.Score)
		}
		m.phase = res.State.Phase
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickInterval())
}

// saveScreenshot writes the current screen as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program for a game that has already been Reset.
func Run(game registry.Game, cfg core.RuntimeConfig, bot *multiplayer.Bot, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, bot, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
