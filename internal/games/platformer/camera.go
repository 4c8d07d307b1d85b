package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// cameraTarget centers the player and clamps to [0, endX-screenW].
// When the level is narrower than the viewport the range collapses to 0.
func cameraTarget(playerX, screenW, endX float64) float64 {
	return core.ClampF(playerX-screenW/2, 0, endX-screenW)
}

// follow moves the camera a fixed fraction of the way to its target.
func (c *Camera) follow(playerX, screenW, endX, smoothness float64) {
	c.TargetX = cameraTarget(playerX, screenW, endX)
	c.X += (c.TargetX - c.X) * smoothness
	c.X = core.ClampF(c.X, 0, endX-screenW)
}
