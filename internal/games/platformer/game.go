// Package platformer implements a side-scrolling platformer in three
// variants that share one fixed-tick simulation: a flat practice stage,
// a lean pit run with deadly enemies, and the full game with spikes,
// lives, pickups and particles.
package platformer

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// levelPath stores a custom level file set via CLI
var levelPath string

// levelID overrides the embedded level named by the variant config
var levelID string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelPath makes every variant load its layout from a level file.
func SetLevelPath(path string) {
	levelPath = path
}

// SetLevelID makes every variant play an embedded level by ID.
// A level file set with SetLevelPath takes precedence.
func SetLevelID(id string) {
	levelID = id
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

var titles = map[string]string{
	config.VariantStage:      "Platformer: First Steps",
	config.VariantPits:       "Platformer: Pit Run",
	config.VariantPlatformer: "Platformer",
}

func init() {
	for _, id := range []string{config.VariantStage, config.VariantPits, config.VariantPlatformer} {
		registry.Register(id, func() registry.Game { return New(id) })
	}
}

// Game implements one platformer variant.
type Game struct {
	id string

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	level      config.Level
	fixed      bool   // cfg and level were injected, skip loading
	levelID    string // per-instance embedded level override
	loadErr    error
	difficulty *config.DifficultyManager
	emitter    *Emitter

	// Run state
	world   World
	phase   Phase
	score   int
	coins   int
	elapsed float64 // seconds of play
	ticks   int     // ticks spent playing
	events  []core.Event
}

// New creates a game for a variant ID. Config and level load on Reset.
func New(id string) *Game {
	return &Game{id: id}
}

// NewWithConfig creates a game that always runs the given tuning and layout.
func NewWithConfig(id string, cfg config.PlatformerConfig, lvl config.Level) *Game {
	return &Game{id: id, cfg: cfg, level: lvl, fixed: true}
}

// UseLevel makes this instance play an embedded level by ID from the next
// Reset on. It wins over SetLevelID but not over SetLevelPath.
func (g *Game) UseLevel(id string) {
	g.levelID = id
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if t, ok := titles[g.id]; ok {
		return t
	}
	return g.id
}

// LoadErr reports config or level problems hit during the last Reset.
// The game still runs on built-in defaults when it is non-nil.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Reset loads configuration and level and returns to the start phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadErr = nil
	if !g.fixed {
		g.cfg, g.level, g.loadErr = load(g.id, g.levelID)
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.emitter = NewEmitter(g.cfg.Particles, runtime.Seed)
	g.world = buildWorld(g.level)
	g.resetRun()
	g.phase = PhaseStart
}

// load resolves tuning and layout for a variant, falling back to built-ins.
func load(id, override string) (config.PlatformerConfig, config.Level, error) {
	var errs []error

	cfg, err := config.LoadPlatformer(id, configPath)
	if err != nil {
		errs = append(errs, err)
		cfg = config.DefaultFor(id)
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
		cfg = config.DefaultFor(id)
	}

	var lvl config.Level
	switch {
	case levelPath != "":
		lvl, err = config.LoadLevelFile(levelPath)
	case override != "":
		lvl, err = config.EmbeddedLevel(override)
	case levelID != "":
		lvl, err = config.EmbeddedLevel(levelID)
	default:
		lvl, err = config.EmbeddedLevel(cfg.Level)
	}
	if err != nil {
		errs = append(errs, err)
		if lvl, err = config.EmbeddedLevel(id); err != nil {
			// Embedded levels are validated by tests; reaching this is a build defect.
			panic(fmt.Sprintf("platformer: no embedded level for %q: %v", id, err))
		}
	}
	return cfg, lvl, errors.Join(errs...)
}

// resetRun rewinds the world without touching the phase.
func (g *Game) resetRun() {
	g.world.reset(g.level, g.cfg.Player)
	g.score = 0
	g.coins = 0
	g.elapsed = 0
	g.ticks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch {
	case in.Has(core.ActionRestart) && (g.phase.Terminal() || g.cfg.Rules.RestartAny):
		g.restart()
		return g.result()
	case in.Has(core.ActionConfirm) && g.phase == PhaseStart:
		g.setPhase(PhasePlaying)
	case in.Has(core.ActionPause) && g.phase == PhasePlaying:
		g.setPhase(PhasePaused)
	case in.Has(core.ActionPause) && g.phase == PhasePaused:
		g.setPhase(PhasePlaying)
	}

	if g.phase != PhasePlaying {
		return g.result()
	}

	g.tick(in)
	return g.result()
}

// restart rewinds the world. Only a finished or dead run goes back to start;
// a run in progress keeps playing from the spawn point.
func (g *Game) restart() {
	g.resetRun()
	if g.phase.Terminal() {
		g.setPhase(PhaseStart)
	}
}

// tick runs one fixed simulation step. Only called while playing.
func (g *Game) tick(in core.InputFrame) {
	phys := g.cfg.Physics
	size := g.cfg.Player
	w := &g.world
	p := &w.Player

	g.ticks++
	g.elapsed += phys.TickSeconds

	if p.Invincible {
		p.InvincibleTimer -= phys.TickSeconds
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
			p.InvincibleTimer = 0
		}
	}

	if held(in, core.ActionLeft) {
		p.X -= phys.MoveSpeed
	}
	if held(in, core.ActionRight) {
		p.X += phys.MoveSpeed
	}
	if g.cfg.Rules.ClampLeft && p.X < 0 {
		p.X = 0
	}

	if in.Has(core.ActionJump) && p.Grounded {
		p.VelY = phys.JumpForce
		p.Grounded = false
		g.burst(p.X+size.Width/2, p.Y+size.Height, g.cfg.Particles.JumpBurst, core.ColorGray)
		g.emit(core.EventJump, "")
	}

	prevFeet := p.Y + size.Height
	p.VelY = math.Min(p.VelY+phys.Gravity, phys.MaxFallSpeed)
	p.Y += p.VelY
	g.resolveGround(prevFeet)

	if g.cfg.Rules.Spikes && !p.Invincible && g.onSpikes() {
		g.damage(g.cfg.Particles.SpikeBurst, core.ColorOrange, "spike")
	}

	if p.Y > w.ScreenH+phys.FallMargin {
		g.die("fall")
	}

	if p.X >= w.EndX {
		g.finish()
	}

	w.Camera.follow(p.X, w.ScreenW, w.EndX, g.cfg.Camera.Smoothness)
	if g.cfg.Rules.Enemies {
		g.updateEnemies()
	}
	if g.cfg.Rules.Collectibles {
		g.updateCollectibles()
	}
	w.Particles = updateParticles(w.Particles, g.cfg.Particles.Gravity)
}

// held reports a movement key as down, whether it came from a hold or a one-off press.
func held(in core.InputFrame, a core.Action) bool {
	return in.IsHeld(a) || in.Has(a)
}

// resolveGround snaps the player onto the ground line when their feet
// reach it over a segment. The previous feet position keeps a fast fall
// from skipping the snap window.
func (g *Game) resolveGround(prevFeet float64) {
	w := &g.world
	p := &w.Player
	h := g.cfg.Player.Height
	feet := p.Y + h
	tol := g.cfg.Physics.SnapTolerance

	if feet >= w.GroundY-1 && prevFeet <= w.GroundY+tol && w.overGround(p.X, g.cfg.Player.Width) {
		p.Y = w.GroundY - h
		p.VelY = 0
		p.Grounded = true
		return
	}
	p.Grounded = false
}

// onSpikes reports whether the player is inside a spike segment's hazard band.
func (g *Game) onSpikes() bool {
	w := &g.world
	box := w.playerBox(g.cfg.Player)
	top := w.GroundY - g.cfg.Physics.SpikeHeight
	bottom := w.GroundY + g.cfg.Physics.SnapTolerance

	for _, seg := range w.Ground {
		if seg.Spike && seg.Overlaps(box.X, box.W) && box.Bottom() >= top && box.Y < bottom {
			return true
		}
	}
	return false
}

// damage costs one life and starts the hit invincibility window.
func (g *Game) damage(burst int, c core.Color, source string) {
	if g.phase != PhasePlaying {
		return
	}
	p := &g.world.Player
	if p.Lives > 0 {
		p.Lives--
	}
	p.Invincible = true
	p.InvincibleTimer = g.cfg.Player.HitInvincibility

	cx, cy := g.world.playerBox(g.cfg.Player).Center()
	g.burst(cx, cy, burst, c)
	g.emit(core.EventDamage, source)

	if p.Lives == 0 {
		g.die(source)
	}
}

// die ends the run. Later terminal conditions in the same tick are ignored.
func (g *Game) die(cause string) {
	if g.phase != PhasePlaying {
		return
	}
	g.emit(core.EventDeath, cause)
	g.setPhase(PhaseDead)
}

// finish ends the run at the level end and pays the time and coin bonus once.
func (g *Game) finish() {
	if g.phase != PhasePlaying {
		return
	}
	bonus := g.coins * g.cfg.Pickups.CoinBonus
	if g.elapsed > 0 {
		bonus += int(g.cfg.Pickups.FinishBonus / g.elapsed)
	}
	g.score += bonus
	g.emit(core.EventFinish, fmt.Sprintf("bonus=%d", bonus))
	g.setPhase(PhaseFinished)
}

// burst spawns particles when the variant has them.
func (g *Game) burst(x, y float64, count int, c core.Color) {
	if !g.cfg.Rules.Particles || count <= 0 {
		return
	}
	g.world.Particles = g.emitter.Burst(g.world.Particles, x, y, count, c)
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.phase = p
	g.emit(core.EventPhase, string(p))
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    string(g.phase),
		GameOver: g.phase.Terminal(),
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current run phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Summary reports the run for persistence.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Score:   g.score,
		Coins:   g.coins,
		Outcome: string(g.phase),
		Ticks:   g.ticks,
	}
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	s := g.Snapshot()
	Draw(dst, &s)
}
