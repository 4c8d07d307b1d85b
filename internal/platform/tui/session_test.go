package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func newSession(t *testing.T) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return NewSessionModel(openStore(t), core.DefaultConfig(), Hooks{}, "tester")
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	ids := make([]string, 0, len(m.items))
	for _, it := range m.items {
		ids = append(ids, it.GameID)
	}
	assert.ElementsMatch(t, []string{config.VariantStage, config.VariantPits, config.VariantPlatformer}, ids)

	view := m.View()
	assert.Contains(t, view, "Platformer: First Steps")
	assert.Contains(t, view, "Platformer: Pit Run")
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(config.VariantPits, 4321)
	require.NoError(t, err)

	m := NewMenuModel(store, core.DefaultConfig())
	assert.Contains(t, m.View(), "4321")
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newSession(t)

	m, cmd := sessionSend(t, m, keyMsg(tea.KeyEnter))
	require.Equal(t, screenGame, m.screen)
	assert.False(t, isQuit(cmd), "selection must not end the session")

	m, _ = sessionSend(t, m, TickMsg(time.Now()))
	assert.Equal(t, "start", m.game.State().Phase)

	m, cmd = sessionSend(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, screenMenu, m.screen)
	assert.False(t, isQuit(cmd))

	// A stale tick from the finished game is ignored by the menu.
	m, _ = sessionSend(t, m, TickMsg(time.Now()))
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionLevelPicker(t *testing.T) {
	m := newSession(t)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'L'}})
	require.Equal(t, screenLevels, m.screen)

	// Row 0 is the variant default; row 1 is the first embedded level.
	m, _ = sessionSend(t, m, keyMsg(tea.KeyDown))
	m, cmd := sessionSend(t, m, keyMsg(tea.KeyEnter))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, config.LevelIDs()[0], m.levelID)
	assert.Contains(t, m.View(), m.levelID)
}

func TestSessionScoreboard(t *testing.T) {
	m := newSession(t)

	m, _ = sessionSend(t, m, keyMsg(tea.KeyTab))
	require.Equal(t, screenScores, m.screen)
	assert.True(t, strings.Contains(m.View(), "HIGH SCORES"))

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	assert.Contains(t, m.View(), "RECENT RUNS")

	m, _ = sessionSend(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionQuit(t *testing.T) {
	m := newSession(t)
	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestLevelSelectBack(t *testing.T) {
	m := NewLevelSelectModel(80, 24, "gauntlet")
	assert.Equal(t, "gauntlet", m.levels[m.cursor-1].ID, "cursor starts on the current level")

	next, _ := m.Update(keyMsg(tea.KeyEsc))
	m = next.(LevelSelectModel)
	assert.True(t, m.WantsBack())
	_, chosen := m.Chosen()
	assert.False(t, chosen)
}
