package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// updateEnemies moves every active enemy along its patrol and resolves contact.
func (g *Game) updateEnemies() {
	w := &g.world
	size := g.cfg.Player
	factor := g.difficulty.Speed(1.0, g.score, g.ticks)
	player := w.playerBox(size)

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active {
			continue
		}

		e.X += e.Speed * float64(e.Dir) * factor
		if g.shouldTurn(e) {
			e.Dir = -e.Dir
		}
		e.Y = w.GroundY - size.Height

		if w.Player.Invincible || g.phase != PhasePlaying {
			continue
		}
		if !player.Intersects(core.NewRectF(e.X, e.Y, size.Width, size.Height)) {
			continue
		}
		if g.cfg.Rules.ContactKills {
			g.die("enemy")
		} else {
			g.damage(g.cfg.Particles.EnemyBurst, core.ColorRed, "enemy")
		}
	}
}

// shouldTurn reflects an enemy at a ledge (edge patrol) or outside its patrol interval.
func (g *Game) shouldTurn(e *Enemy) bool {
	if g.cfg.Rules.EdgePatrol {
		probe := e.X + float64(e.Dir)*g.cfg.Physics.EdgeProbe
		return !g.world.overGround(probe, g.cfg.Player.Width)
	}
	return e.X < e.PatrolStart || e.X > e.PatrolEnd
}
