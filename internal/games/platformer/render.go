package platformer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	GrassGlyph   = '█'
	DirtGlyph    = '▒'
	SpikeGlyph   = '▲'
	PoleGlyph    = '│'
	FlagGlyph    = '▶'
	PlayerGlyph  = '█'
	EnemyGlyph   = '▓'
	CoinGlyph    = 'o'
	HealthGlyph  = '+'
	PowerGlyph   = '*'
	ParticleRune = '·'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
)

const (
	minScreenW = 20
	minScreenH = 8
)

// HUDRows is the number of rows at the top of the screen reserved for the HUD.
const HUDRows = 1

// viewport maps world units onto terminal cells below the HUD.
type viewport struct {
	camX   float64
	sx, sy float64
	top    int
}

func newViewport(s *Snapshot, w, h int) viewport {
	return viewport{
		camX: s.Camera.X,
		sx:   float64(w) / s.ScreenW,
		sy:   float64(h-HUDRows) / s.ScreenH,
		top:  HUDRows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.camX) * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// rect converts a world box to cells. Every visible box covers at least one cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	c0, r0 := v.col(x), v.row(y)
	c1, r1 := v.col(x+w), v.row(y+h)
	return core.NewRect(c0, r0, max(c1-c0, 1), max(r1-r0, 1))
}

// Draw renders a snapshot into dst. It reads only the snapshot.
func Draw(dst *core.Screen, s *Snapshot) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH || s.ScreenW <= 0 || s.ScreenH <= 0 {
		drawTooSmall(dst)
		return
	}

	v := newViewport(s, w, h)
	drawGround(dst, s, v)
	drawFinish(dst, s, v)
	drawCollectibles(dst, s, v)
	drawEnemies(dst, s, v)
	drawParticles(dst, s, v)
	drawPlayer(dst, s, v)
	drawHUD(dst, s)
	drawOverlay(dst, s)
}

func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

func drawGround(dst *core.Screen, s *Snapshot, v viewport) {
	surface := v.row(s.GroundY)
	for _, g := range s.Ground {
		c0, c1 := v.col(g.X1), v.col(g.X2)
		if c1 <= c0 {
			c1 = c0 + 1
		}
		top := core.ColorGreen
		if g.Spike {
			top = core.ColorGray
			dst.DrawHLine(c0, surface-1, c1-c0, SpikeGlyph, core.ColorOrange)
		}
		dst.DrawHLine(c0, surface, c1-c0, GrassGlyph, top)
		dst.DrawRect(core.NewRect(c0, surface+1, c1-c0, dst.Height()-surface-1), DirtGlyph, core.ColorBrown)
	}
}

func drawFinish(dst *core.Screen, s *Snapshot, v viewport) {
	x := v.col(s.EndX)
	surface := v.row(s.GroundY)
	top := max(surface-4, HUDRows)
	dst.DrawVLine(x, top, surface-top, PoleGlyph, core.ColorWhite)
	dst.SetColor(x+1, top, FlagGlyph, core.ColorBrightGreen)
}

func drawCollectibles(dst *core.Screen, s *Snapshot, v viewport) {
	for _, c := range s.Collectibles {
		if c.Collected {
			continue
		}
		glyph, color := CoinGlyph, core.ColorGold
		switch c.Kind {
		case ItemHealth:
			glyph, color = HealthGlyph, core.ColorGreen
		case ItemPowerup:
			glyph, color = PowerGlyph, core.ColorMagenta
		}
		dst.DrawRect(v.rect(c.X, c.Y, s.ItemSize, s.ItemSize), glyph, color)
	}
}

func drawEnemies(dst *core.Screen, s *Snapshot, v viewport) {
	for _, e := range s.Enemies {
		if !e.Active {
			continue
		}
		dst.DrawRect(v.rect(e.X, e.Y, s.PlayerW, s.PlayerH), EnemyGlyph, core.ColorRed)
	}
}

func drawParticles(dst *core.Screen, s *Snapshot, v viewport) {
	for _, p := range s.Particles {
		dst.SetColor(v.col(p.X), v.row(p.Y), ParticleRune, p.Color)
	}
}

// drawPlayer blinks the player while invincible.
func drawPlayer(dst *core.Screen, s *Snapshot, v viewport) {
	color := core.ColorCyan
	if s.Player.Invincible && (s.Tick/6)%2 == 0 {
		color = core.ColorBrightYellow
	}
	dst.DrawRect(v.rect(s.Player.X, s.Player.Y, s.PlayerW, s.PlayerH), PlayerGlyph, color)
}

func drawHUD(dst *core.Screen, s *Snapshot) {
	left := fmt.Sprintf("Score %d", s.Score)
	if s.Rules.Collectibles {
		left += fmt.Sprintf("  Coins %d", s.Coins)
	}
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	x := len([]rune(left)) + 2
	if s.MaxLives > 1 {
		hearts := strings.Repeat(string(HeartFull), s.Player.Lives) +
			strings.Repeat(string(HeartEmpty), max(s.MaxLives-s.Player.Lives, 0))
		dst.DrawTextColor(x, 0, hearts, core.ColorBrightRed)
		x += s.MaxLives + 2
	}
	if s.Player.Invincible {
		dst.DrawTextColor(x, 0, fmt.Sprintf("★ %.1fs", s.Player.InvincibleTimer), core.ColorMagenta)
	}

	progress := 0
	if s.EndX > 0 {
		progress = core.Clamp(int(100*s.Player.X/s.EndX), 0, 100)
	}
	right := fmt.Sprintf("%3d%%  %5.1fs", progress, s.Elapsed)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorGray)
}

func drawOverlay(dst *core.Screen, s *Snapshot) {
	var lines []string
	color := core.ColorBrightWhite

	switch s.Phase {
	case PhaseStart:
		lines = []string{
			s.Title,
			"",
			"Enter to start",
			"←/→ move  Space jump",
			"P pause  R restart  Q quit",
		}
		color = core.ColorBrightCyan
	case PhasePaused:
		lines = []string{"PAUSED", "", "P to resume"}
		color = core.ColorBrightYellow
	case PhaseDead:
		lines = []string{"YOU DIED", "", fmt.Sprintf("Score: %d", s.Score), "R to restart"}
		color = core.ColorBrightRed
	case PhaseFinished:
		lines = []string{
			"STAGE CLEAR!",
			"",
			fmt.Sprintf("Score: %d", s.Score),
			fmt.Sprintf("Time: %.2fs", s.Elapsed),
		}
		if s.Rules.Collectibles {
			lines = append(lines, fmt.Sprintf("Coins: %d", s.Coins))
		}
		lines = append(lines, "R to restart")
		color = core.ColorBrightGreen
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
