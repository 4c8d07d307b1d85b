package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// updateCollectibles applies every uncollected item the player touches, once.
func (g *Game) updateCollectibles() {
	if g.phase != PhasePlaying {
		return
	}
	w := &g.world
	p := &w.Player
	size := g.cfg.Pickups.Size
	player := w.playerBox(g.cfg.Player)

	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Collected || !player.Intersects(core.NewRectF(c.X, c.Y, size, size)) {
			continue
		}

		c.Collected = true
		g.score += g.cfg.Pickups.Score

		color := core.ColorGold
		switch c.Kind {
		case ItemCoin:
			g.coins++
		case ItemHealth:
			p.Lives = min(p.Lives+1, g.cfg.Player.MaxLives)
			color = core.ColorGreen
		case ItemPowerup:
			p.Invincible = true
			p.InvincibleTimer = math.Max(p.InvincibleTimer, g.cfg.Player.PowerupInvincibility)
			color = core.ColorMagenta
		}

		g.burst(c.X+size/2, c.Y+size/2, g.cfg.Particles.PickupBurst, color)
		g.emit(core.EventPickup, c.Kind.String())
	}
}
