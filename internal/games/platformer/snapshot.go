package platformer

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Snapshot is an immutable copy of everything the renderer and spectators need.
// Slices are deep copies; mutating the game afterwards never changes a snapshot.
type Snapshot struct {
	Game    string  `json:"game"`
	Title   string  `json:"title"`
	Tick    int     `json:"tick"`
	Phase   Phase   `json:"phase"`
	Score   int     `json:"score"`
	Coins   int     `json:"coins"`
	Elapsed float64 `json:"elapsed"`

	MaxLives    int     `json:"max_lives"`
	PlayerW     float64 `json:"player_w"`
	PlayerH     float64 `json:"player_h"`
	ItemSize    float64 `json:"item_size"`
	SpikeHeight float64 `json:"spike_height"`

	ScreenW float64 `json:"screen_w"`
	ScreenH float64 `json:"screen_h"`
	GroundY float64 `json:"ground_y"`
	EndX    float64 `json:"end_x"`

	Rules config.PlatformerRules `json:"rules"`

	Player       Player        `json:"player"`
	Camera       Camera        `json:"camera"`
	Ground       []Ground      `json:"ground"`
	Enemies      []Enemy       `json:"enemies"`
	Collectibles []Collectible `json:"collectibles"`
	Particles    []Particle    `json:"particles"`
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	return Snapshot{
		Game:    g.id,
		Title:   g.Title(),
		Tick:    g.ticks,
		Phase:   g.phase,
		Score:   g.score,
		Coins:   g.coins,
		Elapsed: g.elapsed,

		MaxLives:    g.cfg.Player.MaxLives,
		PlayerW:     g.cfg.Player.Width,
		PlayerH:     g.cfg.Player.Height,
		ItemSize:    g.cfg.Pickups.Size,
		SpikeHeight: g.cfg.Physics.SpikeHeight,

		ScreenW: w.ScreenW,
		ScreenH: w.ScreenH,
		GroundY: w.GroundY,
		EndX:    w.EndX,

		Rules: g.cfg.Rules,

		Player:       w.Player,
		Camera:       w.Camera,
		Ground:       slices.Clone(w.Ground),
		Enemies:      slices.Clone(w.Enemies),
		Collectibles: slices.Clone(w.Collectibles),
		Particles:    slices.Clone(w.Particles),
	}
}

// Hash returns a fingerprint of the simulation state for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	f := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	n := func(v int) { f(float64(v)) }

	h.Write([]byte(s.Phase))
	n(s.Tick)
	n(s.Score)
	n(s.Coins)
	f(s.Player.X)
	f(s.Player.Y)
	f(s.Player.VelY)
	n(s.Player.Lives)
	f(s.Player.InvincibleTimer)
	f(s.Camera.X)
	for _, e := range s.Enemies {
		f(e.X)
		n(e.Dir)
	}
	for _, c := range s.Collectibles {
		if c.Collected {
			n(1)
		} else {
			n(0)
		}
	}
	for _, p := range s.Particles {
		f(p.X)
		f(p.Y)
		n(p.Life)
	}
	return h.Sum64()
}
