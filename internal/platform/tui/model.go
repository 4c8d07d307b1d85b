package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/spectate"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// spectateEvery is the number of ticks between spectator frames.
const spectateEvery = 2

// localSession names frames from a game played in the local terminal.
const localSession = "local"

// Hooks receives the side effects of a running game. Nil fields are skipped.
type Hooks struct {
	Logger   *log.Logger
	Audio    audio.Player
	Spectate *spectate.Hub

	// Session and Player label spectator frames.
	Session string
	Player  string
}

func (h Hooks) withDefaults() Hooks {
	if h.Session == "" {
		h.Session = localSession
	}
	if h.Logger == nil {
		h.Logger = log.New(io.Discard)
	}
	if h.Audio == nil {
		h.Audio = audio.NopPlayer{}
	}
	return h
}

// summarizer is implemented by games that can describe a finished run.
type summarizer interface {
	Summary() core.RunSummary
}

// snapshotter is implemented by games that can be watched by spectators.
type snapshotter interface {
	Snapshot() platformer.Snapshot
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *Renderer
	store      *storage.Store
	config     core.RuntimeConfig
	hooks      Hooks
	keys       GameKeyMap
	inputFrame core.InputFrame
	held       *core.HeldInput
	gameState  core.GameState
	ticks      int
	runSaved   bool // whether the current terminal state has been persisted
	standalone bool // back-to-menu quits the program
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, hooks Hooks) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewRenderer(DefaultTheme()),
		store:      store,
		config:     cfg,
		hooks:      hooks.withDefaults(),
		keys:       DefaultGameKeyMap(),
		inputFrame: core.NewInputFrame(),
		held:       core.NewHeldInput(cfg.HoldTicks),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if lg, ok := m.game.(interface{ LoadErr() error }); ok && lg.LoadErr() != nil {
		m.hooks.Logger.Warn("config fallback", "game", m.game.ID(), "error", lg.LoadErr())
	}
	m.hooks.Logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is in its own units, so a resize only changes the viewport.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		m.held.Press(action)

	case core.ActionBack:
		m.held.ReleaseAll()
		if m.gameState.GameOver || m.gameState.Paused || m.gameState.Phase == string(platformer.PhaseStart) {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)

	case core.ActionRestart, core.ActionPause:
		// A press made before the interruption must not move the rewound or resumed player.
		m.held.ReleaseAll()
		m.inputFrame.Set(action)

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick advances the simulation one step and fans out its events.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State
	m.ticks++

	m.dispatch(result.Events)

	if m.hooks.Spectate != nil && m.ticks%spectateEvery == 0 && m.hooks.Spectate.Len() > 0 {
		if s, ok := m.game.(snapshotter); ok {
			frame := spectate.Frame{
				Session: m.hooks.Session,
				Player:  m.hooks.Player,
				Tick:    m.ticks,
				State:   s.Snapshot(),
			}
			if err := m.hooks.Spectate.Broadcast(frame); err != nil {
				m.hooks.Logger.Warn("spectate broadcast failed", "error", err)
			}
		}
	}

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// dispatch forwards tick events to the logger and the sound player.
func (m GameModel) dispatch(events []core.Event) {
	if len(events) == 0 {
		return
	}
	for _, ev := range events {
		m.hooks.Logger.Debug("event", "game", m.game.ID(), "kind", ev.Kind, "detail", ev.Detail)
	}
	m.hooks.Audio.Play(events)
}

// saveRun persists a finished run once per terminal state.
func (m GameModel) saveRun() {
	id := m.game.ID()
	sum := core.RunSummary{Score: m.gameState.Score, Outcome: m.gameState.Phase}
	if s, ok := m.game.(summarizer); ok {
		sum = s.Summary()
	}

	m.hooks.Logger.Info("run ended",
		"game", id,
		"outcome", sum.Outcome,
		"score", sum.Score,
		"coins", sum.Coins,
		"ticks", sum.Ticks,
	)

	if m.store == nil {
		return
	}
	if sum.Score > 0 {
		if _, err := m.store.SaveScore(id, sum.Score); err != nil {
			m.hooks.Logger.Error("save score", "game", id, "error", err)
		}
	}
	run := storage.Run{
		GameID:  id,
		Score:   sum.Score,
		Coins:   sum.Coins,
		Outcome: sum.Outcome,
		Ticks:   sum.Ticks,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.hooks.Logger.Error("save run", "game", id, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserDir("screenshots")
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.hooks.Logger.Warn("screenshot dir", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.hooks.Logger.Warn("screenshot", "path", path, "error", err)
		return
	}
	m.hooks.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the state reported by the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, hooks Hooks) error {
	model := NewGameModel(game, store, cfg, hooks)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
