package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Phase is the run state. Exactly one phase is active at a time.
type Phase string

const (
	PhaseStart    Phase = "start"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseFinished Phase = "finished"
	PhaseDead     Phase = "dead"
)

// Terminal reports whether the run has ended.
func (p Phase) Terminal() bool {
	return p == PhaseFinished || p == PhaseDead
}

// Player is the controllable hitbox. X, Y is the top-left corner in world units.
type Player struct {
	X, Y            float64
	VelY            float64
	Grounded        bool
	Lives           int
	Invincible      bool
	InvincibleTimer float64 // seconds left
}

// Ground is a half-open interval [X1, X2) whose surface sits at the level's ground line.
type Ground struct {
	X1, X2 float64
	Spike  bool
}

// Overlaps reports whether a span starting at x with width w shares area with the segment.
func (g Ground) Overlaps(x, w float64) bool {
	return x+w > g.X1 && x < g.X2
}

// Enemy patrols along the ground line. Inactive enemies are skipped, never removed.
type Enemy struct {
	X, Y        float64
	Speed       float64
	Dir         int
	PatrolStart float64
	PatrolEnd   float64
	Active      bool
}

// ItemKind is the type of a collectible.
type ItemKind int

const (
	ItemCoin ItemKind = iota
	ItemHealth
	ItemPowerup
)

// String returns the kind name as used in level files.
func (k ItemKind) String() string {
	switch k {
	case ItemHealth:
		return "health"
	case ItemPowerup:
		return "powerup"
	default:
		return "coin"
	}
}

// parseItemKind maps a level-file kind to an ItemKind. Unknown kinds are coins.
func parseItemKind(s string) ItemKind {
	switch s {
	case "health":
		return ItemHealth
	case "powerup":
		return ItemPowerup
	default:
		return ItemCoin
	}
}

// Collectible is a one-shot pickup. Collected only goes false to true until reset.
type Collectible struct {
	X, Y      float64
	Kind      ItemKind
	Collected bool
}

// Camera is the smoothed horizontal scroll offset.
type Camera struct {
	X       float64
	TargetX float64
}

// World holds the static layout plus every mutable entity of a run.
type World struct {
	ScreenW, ScreenH float64
	GroundY          float64
	EndX             float64
	SpawnX, SpawnY   float64

	Ground       []Ground
	Enemies      []Enemy
	Collectibles []Collectible
	Particles    []Particle

	Player Player
	Camera Camera
}

// buildWorld lays a level out into value slices. The slices keep their
// backing arrays for the life of the game; resets rewrite them in place.
func buildWorld(lvl config.Level) World {
	w := World{
		ScreenW: lvl.ScreenW,
		ScreenH: lvl.ScreenH,
		GroundY: lvl.GroundY,
		EndX:    lvl.EndX,
		SpawnX:  lvl.Spawn.X,
		SpawnY:  lvl.Spawn.Y,
	}

	w.Ground = make([]Ground, len(lvl.Ground))
	for i, g := range lvl.Ground {
		w.Ground[i] = Ground{X1: g.X1, X2: g.X2, Spike: g.Spike}
	}
	w.Enemies = make([]Enemy, len(lvl.Enemies))
	w.Collectibles = make([]Collectible, len(lvl.Collectibles))
	w.Particles = make([]Particle, 0, 128)
	return w
}

// reset puts every entity back to its level-load state.
func (w *World) reset(lvl config.Level, player config.PlatformerPlayer) {
	w.Player = Player{
		X:     w.SpawnX,
		Y:     w.SpawnY,
		Lives: player.Lives,
	}
	w.Camera = Camera{}

	for i, e := range lvl.Enemies {
		w.Enemies[i] = Enemy{
			X:           e.X,
			Y:           w.GroundY - player.Height,
			Speed:       e.Speed,
			Dir:         e.Dir,
			PatrolStart: e.PatrolStart,
			PatrolEnd:   e.PatrolEnd,
			Active:      true,
		}
	}
	for i, c := range lvl.Collectibles {
		w.Collectibles[i] = Collectible{X: c.X, Y: c.Y, Kind: parseItemKind(c.Kind)}
	}
	w.Particles = w.Particles[:0]
}

// overGround reports whether a span of width wd at x overlaps any ground segment.
func (w *World) overGround(x, wd float64) bool {
	for _, g := range w.Ground {
		if g.Overlaps(x, wd) {
			return true
		}
	}
	return false
}

// playerBox returns the player hitbox.
func (w *World) playerBox(cfg config.PlatformerPlayer) core.RectF {
	return core.NewRectF(w.Player.X, w.Player.Y, cfg.Width, cfg.Height)
}

// MarshalText encodes the kind by name.
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
