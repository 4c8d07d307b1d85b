package platformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRenderTitleScreen(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Enter to start")
	assert.Contains(t, out, "Score 0")
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, nil)
	start(g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 800x600 world on 80x23 play rows: x=100 -> col 10, y=350 -> row 1+13.
	cell := screen.GetCell(10, 14)
	assert.Equal(t, PlayerGlyph, cell.Rune)
	assert.Equal(t, core.ColorCyan, cell.Color)

	ground := screen.GetCell(40, 16)
	assert.Equal(t, GrassGlyph, ground.Rune)
	assert.Equal(t, core.ColorGreen, ground.Color)
	assert.Equal(t, DirtGlyph, screen.Get(40, 20))

	assert.NotContains(t, screen.String(), "PAUSED")
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  string
	}{
		{"paused", func(g *Game) { start(g); g.Step(frame(core.ActionPause)) }, "PAUSED"},
		{"dead", func(g *Game) { start(g); g.die("test") }, "YOU DIED"},
		{"finished", func(g *Game) { start(g); g.finish() }, "STAGE CLEAR!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			tt.setup(g)
			screen := core.NewScreen(80, 24)
			g.Render(screen)
			assert.Contains(t, screen.String(), tt.want)
		})
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Enemies = []config.EnemyDef{{X: 600, Speed: 2, Dir: 1, PatrolStart: 500, PatrolEnd: 700}}
		lvl.Collectibles = []config.CollectibleDef{{X: 300, Y: 300, Kind: "powerup"}}
	})
	start(g)
	g.Step(frame(core.ActionJump))

	before := g.Snapshot().Hash()
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	first := screen.String()
	g.Render(screen)

	assert.Equal(t, before, g.Snapshot().Hash())
	assert.Equal(t, first, screen.String())
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, nil)
	start(g)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Coins 0")
	assert.Contains(t, hud, strings.Repeat(string(HeartFull), 3)+strings.Repeat(string(HeartEmpty), 2))
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(18, 6)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}
