package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLevels
	screenScores
	screenGame
)

// levelUser is implemented by games that accept a per-instance level.
type levelUser interface {
	UseLevel(id string)
}

// SessionModel manages the full session flow inside one Bubble Tea program:
// menu, level picker, scoreboard and game. Sub-screens signal completion
// with tea.Quit, which the session swallows when switching screens.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	hooks    Hooks
	username string
	levelID  string
	screen   sessionScreen
	menu     MenuModel
	levels   LevelSelectModel
	scores   ScoreboardModel
	game     GameModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, hooks Hooks, username string) SessionModel {
	return SessionModel{
		store:    store,
		config:   cfg,
		hooks:    hooks.withDefaults(),
		username: username,
		menu:     NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenLevels:
		return m.updateLevels(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config).WithLevel(m.levelID)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.WantsLevels():
		m.screen = screenLevels
		m.levels = NewLevelSelectModel(m.config.ScreenW, m.config.ScreenH, m.levelID)
		return m, m.levels.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			m.hooks.Logger.Error("create game", "game", m.menu.Selected().GameID, "error", err)
			return m.toMenu()
		}
		if lu, ok := game.(levelUser); ok && m.levelID != "" {
			lu.UseLevel(m.levelID)
		}
		m.hooks.Logger.Info("session game", "user", m.username, "game", game.ID(), "level", m.levelID)
		m.config = m.menu.Config()
		m.game = NewGameModel(game, m.store, m.config, m.hooks)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.levels.Update(msg)
	if lm, ok := next.(LevelSelectModel); ok {
		m.levels = lm
	}

	if m.levels.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if id, chosen := m.levels.Chosen(); chosen {
		m.levelID = id
		return m.toMenu()
	}
	if m.levels.WantsBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		// Stale tick messages for the old game are dropped by the menu.
		return m.toMenu()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenLevels:
		return m.levels.View()
	case screenScores:
		return m.scores.View()
	case screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}
