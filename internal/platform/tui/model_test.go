package tui

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/spectate"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

type recordingPlayer struct {
	events []core.Event
}

func (p *recordingPlayer) Play(events []core.Event) { p.events = append(p.events, events...) }
func (p *recordingPlayer) Close()                   {}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func stageGame(t *testing.T) *platformer.Game {
	t.Helper()
	lvl, err := config.EmbeddedLevel(config.VariantStage)
	require.NoError(t, err)
	return platformer.NewWithConfig(config.VariantStage, config.DefaultStageConfig(), lvl)
}

func newModel(t *testing.T, store *storage.Store, hooks Hooks) GameModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(stageGame(t), store, cfg, hooks)
	m.Init()
	return m
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, TickMsg(time.Now()))
	return m
}

// runToFinish starts the stage and holds right until the run ends.
func runToFinish(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m = tick(t, m)
	require.Equal(t, string(platformer.PhasePlaying), m.State().Phase)

	for i := 0; i < 600 && !m.State().GameOver; i++ {
		if i%5 == 0 {
			m, _ = send(t, m, keyMsg(tea.KeyRight))
		}
		m = tick(t, m)
	}
	require.True(t, m.State().GameOver, "stage should be cleared by walking right")
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	m := newModel(t, store, Hooks{})

	m = runToFinish(t, m)
	assert.Equal(t, string(platformer.PhaseFinished), m.State().Phase)

	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}

	runs, err := store.RecentRuns(config.VariantStage, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "finished", runs[0].Outcome)
	assert.Greater(t, runs[0].Score, 0)
	assert.Greater(t, runs[0].Ticks, 0)

	hs, err := store.HighScore(config.VariantStage)
	require.NoError(t, err)
	assert.Equal(t, runs[0].Score, hs)
}

func TestGameModelSavesAgainAfterRestart(t *testing.T) {
	store := openStore(t)
	m := newModel(t, store, Hooks{})

	m = runToFinish(t, m)
	m, _ = send(t, m, runeKey('r'))
	m = tick(t, m)
	assert.Equal(t, string(platformer.PhaseStart), m.State().Phase)

	runToFinish(t, m)

	runs, err := store.RecentRuns(config.VariantStage, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestGameModelWithoutStore(t *testing.T) {
	m := newModel(t, nil, Hooks{})
	m = runToFinish(t, m)
	assert.True(t, m.State().GameOver)
}

func TestGameModelForwardsEventsToAudio(t *testing.T) {
	player := &recordingPlayer{}
	m := newModel(t, nil, Hooks{Audio: player})

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m = tick(t, m)
	// Spawn is above the floor; wait until landed.
	for i := 0; i < 60; i++ {
		m = tick(t, m)
	}
	m, _ = send(t, m, keyMsg(tea.KeySpace))
	tick(t, m)

	var kinds []core.EventKind
	for _, ev := range player.events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Contains(t, kinds, core.EventPhase)
	assert.Contains(t, kinds, core.EventJump)
}

func TestGameModelHeldKeysMovePlayer(t *testing.T) {
	g := stageGame(t)
	cfg := core.DefaultConfig()
	cfg.HoldTicks = 4
	m := NewGameModel(g, nil, cfg, Hooks{})
	m.Init()

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m = tick(t, m)
	start := g.Snapshot().Player.X

	m, _ = send(t, m, keyMsg(tea.KeyRight))
	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}
	moved := g.Snapshot().Player.X - start
	assert.InDelta(t, 4*config.DefaultStageConfig().Physics.MoveSpeed, moved, 1e-9,
		"one press holds for exactly HoldTicks ticks")
}

func TestGameModelRestartDropsHeldKeys(t *testing.T) {
	lvl, err := config.EmbeddedLevel(config.VariantStage)
	require.NoError(t, err)
	cfg := config.DefaultStageConfig()
	cfg.Rules.RestartAny = true
	g := platformer.NewWithConfig(config.VariantStage, cfg, lvl)
	m := NewGameModel(g, nil, core.DefaultConfig(), Hooks{})
	m.Init()

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m = tick(t, m)

	m, _ = send(t, m, keyMsg(tea.KeyRight))
	m = tick(t, m)
	require.Greater(t, g.Snapshot().Player.X, lvl.Spawn.X)

	m, _ = send(t, m, runeKey('r'))
	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}
	assert.Equal(t, string(platformer.PhasePlaying), m.State().Phase)
	assert.Equal(t, lvl.Spawn.X, g.Snapshot().Player.X, "restart must not replay the old press")
}

func TestGameModelPauseDropsHeldKeys(t *testing.T) {
	g := stageGame(t)
	m := NewGameModel(g, nil, core.DefaultConfig(), Hooks{})
	m.Init()

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m = tick(t, m)
	m, _ = send(t, m, keyMsg(tea.KeyRight))
	m = tick(t, m)

	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m)
	require.True(t, m.State().Paused)
	pausedAt := g.Snapshot().Player.X

	m, _ = send(t, m, runeKey('p'))
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	assert.False(t, m.State().Paused)
	assert.Equal(t, pausedAt, g.Snapshot().Player.X, "resume must not replay the old press")
}

func TestGameModelPauseAndBack(t *testing.T) {
	m := newModel(t, nil, Hooks{})
	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m = tick(t, m)

	// Esc while playing pauses instead of leaving.
	m, _ = send(t, m, keyMsg(tea.KeyEsc))
	m = tick(t, m)
	assert.True(t, m.State().Paused)
	assert.False(t, m.BackToMenu())

	m, cmd := send(t, m, keyMsg(tea.KeyEsc))
	assert.True(t, m.BackToMenu())
	assert.False(t, isQuit(cmd), "session models stay alive on back")

	m.standalone = true
	m.backToMenu = false
	_, cmd = send(t, m, keyMsg(tea.KeyEsc))
	assert.True(t, isQuit(cmd), "standalone back quits the program")
}

func TestGameModelQuit(t *testing.T) {
	m := newModel(t, nil, Hooks{})
	m, cmd := send(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m := newModel(t, nil, Hooks{})
	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m = tick(t, m)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tick(t, m)
	assert.Equal(t, string(platformer.PhasePlaying), m.State().Phase)

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 40)
}

// watchHub serves hub over httptest and connects one viewer to it.
func watchHub(t *testing.T, hub *spectate.Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	return ws
}

type viewerFrame struct {
	Session string `json:"session"`
	Player  string `json:"player"`
	Tick    int    `json:"tick"`
	State   struct {
		Game  string `json:"game"`
		Phase string `json:"phase"`
	} `json:"state"`
}

func TestGameModelBroadcastsToSpectators(t *testing.T) {
	hub := spectate.NewHub(nil)
	defer hub.Close()
	ws := watchHub(t, hub)

	m := newModel(t, nil, Hooks{Spectate: hub})
	for i := 0; i < spectateEvery; i++ {
		m = tick(t, m)
	}

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame viewerFrame
	require.NoError(t, ws.ReadJSON(&frame))
	assert.Equal(t, localSession, frame.Session)
	assert.Equal(t, spectateEvery, frame.Tick)
	assert.Equal(t, config.VariantStage, frame.State.Game)
	assert.Equal(t, "start", frame.State.Phase)
}

func TestSpectatorsCanTellSessionsApart(t *testing.T) {
	hub := spectate.NewHub(nil)
	defer hub.Close()
	ws := watchHub(t, hub)

	alice := newModel(t, nil, Hooks{Spectate: hub, Session: "s-1", Player: "alice"})
	bob := newModel(t, nil, Hooks{Spectate: hub, Session: "s-2", Player: "bob"})
	for i := 0; i < spectateEvery; i++ {
		alice = tick(t, alice)
		bob = tick(t, bob)
	}

	players := map[string]string{}
	for range 2 {
		_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		var frame viewerFrame
		require.NoError(t, ws.ReadJSON(&frame))
		players[frame.Session] = frame.Player
	}
	assert.Equal(t, map[string]string{"s-1": "alice", "s-2": "bob"}, players)
}
