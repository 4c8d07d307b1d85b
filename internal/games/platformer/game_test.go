package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// flatLevel is a single long floor with the player spawned standing on it.
func flatLevel() config.Level {
	return config.Level{
		ID:      "test",
		Name:    "Test",
		ScreenW: 800,
		ScreenH: 600,
		GroundY: 400,
		EndX:    2200,
		Spawn:   config.Point{X: 100, Y: 350},
		Ground:  []config.GroundDef{{X1: 0, X2: 3000}},
	}
}

func newTestGame(t *testing.T, mutate func(*config.PlatformerConfig, *config.Level)) *Game {
	t.Helper()
	cfg := config.DefaultPlatformerConfig()
	lvl := flatLevel()
	if mutate != nil {
		mutate(&cfg, &lvl)
	}
	require.NoError(t, lvl.Validate())
	g := NewWithConfig("test", cfg, lvl)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func holding(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

// start confirms the title screen; the confirming step also runs the first tick.
func start(g *Game) core.StepResult {
	return g.Step(frame(core.ActionConfirm))
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestRegisteredVariants(t *testing.T) {
	for _, id := range []string{config.VariantStage, config.VariantPits, config.VariantPlatformer} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
		assert.NotEmpty(t, g.Title())
	}
}

func TestResetStartsAtTitle(t *testing.T) {
	g := newTestGame(t, nil)
	assert.Equal(t, PhaseStart, g.Phase())
	assert.Equal(t, 3, g.world.Player.Lives)
	assert.Equal(t, 100.0, g.world.Player.X)
	assert.False(t, g.State().GameOver)
}

func TestNoTickOutsidePlaying(t *testing.T) {
	g := newTestGame(t, nil)

	for range 10 {
		g.Step(holding(core.ActionRight))
	}
	assert.Equal(t, 100.0, g.world.Player.X, "start phase must not simulate")
	assert.Zero(t, g.ticks)

	start(g)
	g.Step(frame(core.ActionPause))
	require.Equal(t, PhasePaused, g.Phase())
	x := g.world.Player.X
	for range 10 {
		g.Step(holding(core.ActionRight))
	}
	assert.Equal(t, x, g.world.Player.X, "paused phase must not simulate")
	assert.True(t, g.State().Paused)
}

func TestStateMachine(t *testing.T) {
	g := newTestGame(t, nil)

	// Pause does nothing before the run starts.
	g.Step(frame(core.ActionPause))
	assert.Equal(t, PhaseStart, g.Phase())

	res := start(g)
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 1, countEvents(res.Events, core.EventPhase))

	g.Step(frame(core.ActionPause))
	assert.Equal(t, PhasePaused, g.Phase())
	g.Step(frame(core.ActionPause))
	assert.Equal(t, PhasePlaying, g.Phase())

	// Confirm only starts from the title.
	g.Step(frame(core.ActionConfirm))
	assert.Equal(t, PhasePlaying, g.Phase())
}

func TestRestartMidRunKeepsPhase(t *testing.T) {
	g := newTestGame(t, nil)
	start(g)
	for range 20 {
		g.Step(holding(core.ActionRight))
	}
	require.Greater(t, g.world.Player.X, 100.0)

	g.Step(frame(core.ActionRestart))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 100.0, g.world.Player.X)
	assert.Zero(t, g.ticks)
}

func TestRestartMidRunIgnoredWithoutRule(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, _ *config.Level) {
		cfg.Rules.RestartAny = false
	})
	start(g)
	for range 10 {
		g.Step(holding(core.ActionRight))
	}
	x := g.world.Player.X

	res := g.Step(frame(core.ActionRestart))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Greater(t, g.world.Player.X, 100.0)
	assert.Equal(t, x, g.world.Player.X, "the ignored restart still ticks the run")
	assert.Equal(t, 12, g.ticks)
	assert.Zero(t, countEvents(res.Events, core.EventPhase))

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionRestart))
	assert.Equal(t, PhasePaused, g.Phase(), "paused runs cannot be restarted either")
}

func TestRestartAfterDeathReturnsToStart(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Ground = []config.GroundDef{{X1: 0, X2: 50}}
		lvl.Spawn = config.Point{X: 100, Y: 300}
	})
	start(g)
	for range 200 {
		if g.Phase() == PhaseDead {
			break
		}
		g.Step(core.NewInputFrame())
	}
	require.Equal(t, PhaseDead, g.Phase())
	assert.True(t, g.State().GameOver)

	g.Step(frame(core.ActionRestart))
	assert.Equal(t, PhaseStart, g.Phase())
	assert.Equal(t, 300.0, g.world.Player.Y)
}

func TestGravityAccumulatesToCap(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Ground = []config.GroundDef{{X1: 2500, X2: 3000}}
		lvl.Spawn = config.Point{X: 100, Y: 0}
		cfg.Physics.FallMargin = 5000
	})
	phys := g.cfg.Physics
	start(g)

	prev := g.world.Player.VelY
	for range 60 {
		g.Step(core.NewInputFrame())
		v := g.world.Player.VelY
		assert.LessOrEqual(t, v, phys.MaxFallSpeed)
		if prev < phys.MaxFallSpeed-phys.Gravity {
			assert.InDelta(t, prev+phys.Gravity, v, 1e-9)
		} else {
			assert.Equal(t, phys.MaxFallSpeed, v)
		}
		prev = v
	}
	assert.False(t, g.world.Player.Grounded)
}

func TestGroundSnapIsIdempotent(t *testing.T) {
	g := newTestGame(t, nil)
	start(g)
	require.True(t, g.world.Player.Grounded)
	y := g.world.Player.Y
	assert.Equal(t, 350.0, y)

	for range 50 {
		g.Step(core.NewInputFrame())
		assert.Equal(t, y, g.world.Player.Y)
		assert.Zero(t, g.world.Player.VelY)
		assert.True(t, g.world.Player.Grounded)
	}
}

func TestFastFallStillLands(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		cfg.Physics.MaxFallSpeed = 45
		cfg.Physics.Gravity = 9
		// Feet pass 370 then 415, stepping over the snap window.
		lvl.Spawn = config.Point{X: 100, Y: 5}
	})
	start(g)
	for range 30 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.True(t, g.world.Player.Grounded)
	assert.Equal(t, 350.0, g.world.Player.Y)
}

func TestJump(t *testing.T) {
	g := newTestGame(t, nil)
	start(g)
	require.True(t, g.world.Player.Grounded)

	res := g.Step(frame(core.ActionJump))
	phys := g.cfg.Physics
	assert.InDelta(t, phys.JumpForce+phys.Gravity, g.world.Player.VelY, 1e-9)
	assert.False(t, g.world.Player.Grounded)
	assert.Equal(t, 1, countEvents(res.Events, core.EventJump))
	assert.Len(t, g.world.Particles, g.cfg.Particles.JumpBurst)

	// No jumping in mid-air.
	v := g.world.Player.VelY
	res = g.Step(frame(core.ActionJump))
	assert.InDelta(t, v+phys.Gravity, g.world.Player.VelY, 1e-9)
	assert.Zero(t, countEvents(res.Events, core.EventJump))

	for range 100 {
		g.Step(core.NewInputFrame())
	}
	assert.True(t, g.world.Player.Grounded, "jump arc should land back on the floor")
}

func TestLeftEdge(t *testing.T) {
	tests := []struct {
		name      string
		clampLeft bool
		want      float64
	}{
		{"clamped", true, 0},
		{"unclamped", false, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
				cfg.Rules.ClampLeft = tt.clampLeft
			})
			start(g)
			g.world.Player.X = 0
			g.Step(holding(core.ActionLeft))
			assert.Equal(t, tt.want, g.world.Player.X)
		})
	}
}

func TestHorizontalMovement(t *testing.T) {
	g := newTestGame(t, nil)
	start(g)

	g.Step(holding(core.ActionRight))
	assert.Equal(t, 105.0, g.world.Player.X)
	g.Step(holding(core.ActionLeft))
	assert.Equal(t, 100.0, g.world.Player.X)
	g.Step(holding(core.ActionLeft, core.ActionRight))
	assert.Equal(t, 100.0, g.world.Player.X)
	// A one-off press moves like a held key for that tick.
	g.Step(frame(core.ActionRight))
	assert.Equal(t, 105.0, g.world.Player.X)
}

func TestInvincibilityTimerClearsAtZero(t *testing.T) {
	g := newTestGame(t, nil)
	start(g)
	p := &g.world.Player
	p.Invincible = true
	p.InvincibleTimer = 0.05

	prev := p.InvincibleTimer
	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
		assert.True(t, p.Invincible, "tick %d", i)
		assert.Less(t, p.InvincibleTimer, prev)
		assert.Greater(t, p.InvincibleTimer, 0.0)
		prev = p.InvincibleTimer
	}

	g.Step(core.NewInputFrame())
	assert.False(t, p.Invincible)
	assert.Zero(t, p.InvincibleTimer)

	g.Step(core.NewInputFrame())
	assert.Zero(t, p.InvincibleTimer, "timer never goes below zero")
}

func TestSpikeDamage(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Ground = []config.GroundDef{{X1: 0, X2: 3000, Spike: true}}
	})
	res := start(g)

	p := &g.world.Player
	assert.Equal(t, 2, p.Lives)
	assert.True(t, p.Invincible)
	assert.Equal(t, g.cfg.Player.HitInvincibility, p.InvincibleTimer)
	assert.Len(t, g.world.Particles, g.cfg.Particles.SpikeBurst)
	assert.Equal(t, 1, countEvents(res.Events, core.EventDamage))

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 2, p.Lives, "invincibility suppresses repeated hits")
}

func TestSpikesDisabled(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		cfg.Rules.Spikes = false
		lvl.Ground = []config.GroundDef{{X1: 0, X2: 3000, Spike: true}}
	})
	start(g)
	assert.Equal(t, 3, g.world.Player.Lives)
}

func TestLastLifeForcesDeath(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		cfg.Player.Lives = 1
		lvl.Ground = []config.GroundDef{{X1: 0, X2: 3000, Spike: true}}
	})
	res := start(g)

	assert.Equal(t, PhaseDead, g.Phase())
	assert.Zero(t, g.world.Player.Lives)
	assert.Equal(t, 1, countEvents(res.Events, core.EventDeath))

	for range 5 {
		g.Step(core.NewInputFrame())
	}
	assert.Zero(t, g.world.Player.Lives, "lives never go negative")
}

func TestFallDeath(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		cfg.Player.Lives = 5
		lvl.Ground = []config.GroundDef{{X1: 0, X2: 50}}
		lvl.Spawn = config.Point{X: 100, Y: 300}
	})
	start(g)

	var deaths []core.Event
	for range 200 {
		res := g.Step(core.NewInputFrame())
		for _, e := range res.Events {
			if e.Kind == core.EventDeath {
				deaths = append(deaths, e)
			}
		}
		if g.Phase() != PhasePlaying {
			break
		}
	}

	assert.Equal(t, PhaseDead, g.Phase())
	require.Len(t, deaths, 1)
	assert.Equal(t, "fall", deaths[0].Detail)
	assert.Equal(t, 5, g.world.Player.Lives, "falling ignores lives")
	assert.Greater(t, g.world.Player.Y, g.world.ScreenH+g.cfg.Physics.FallMargin)
}

func TestFinishOncePerRun(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Collectibles = []config.CollectibleDef{{X: 105, Y: 360, Kind: "coin"}}
	})
	start(g)
	require.Equal(t, 1, g.coins)
	before := g.score

	g.world.Player.X = g.world.EndX - 3
	res := g.Step(holding(core.ActionRight))

	require.Equal(t, PhaseFinished, g.Phase())
	want := before + int(g.cfg.Pickups.FinishBonus/g.elapsed) + g.coins*g.cfg.Pickups.CoinBonus
	assert.Equal(t, want, g.score)
	assert.Equal(t, 1, countEvents(res.Events, core.EventFinish))

	for range 10 {
		res = g.Step(holding(core.ActionRight))
		assert.Zero(t, countEvents(res.Events, core.EventFinish))
	}
	assert.Equal(t, want, g.score, "bonus is paid once")
	assert.Equal(t, string(PhaseFinished), g.Summary().Outcome)
}

func TestDeathBeatsFinishInSameTick(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		cfg.Player.Lives = 1
		lvl.Ground = []config.GroundDef{{X1: 0, X2: 3000, Spike: true}}
	})
	g.world.Player.X = g.world.EndX
	start(g)

	assert.Equal(t, PhaseDead, g.Phase())
	assert.Zero(t, g.score)
}

func TestCollectibleAppliesOnce(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Collectibles = []config.CollectibleDef{{X: 100, Y: 360, Kind: "coin"}}
	})
	res := start(g)

	assert.True(t, g.world.Collectibles[0].Collected)
	assert.Equal(t, g.cfg.Pickups.Score, g.score)
	assert.Equal(t, 1, g.coins)
	assert.Equal(t, 1, countEvents(res.Events, core.EventPickup))
	assert.Len(t, g.world.Particles, g.cfg.Particles.PickupBurst)

	for range 10 {
		res = g.Step(core.NewInputFrame())
		assert.Zero(t, countEvents(res.Events, core.EventPickup))
	}
	assert.Equal(t, g.cfg.Pickups.Score, g.score)
	assert.Equal(t, 1, g.coins)
}

func TestHealthPickup(t *testing.T) {
	tests := []struct {
		name  string
		lives int
		want  int
	}{
		{"gains a life", 3, 4},
		{"capped at max", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
				cfg.Player.Lives = tt.lives
				lvl.Collectibles = []config.CollectibleDef{{X: 100, Y: 360, Kind: "health"}}
			})
			start(g)
			assert.Equal(t, tt.want, g.world.Player.Lives)
			assert.Zero(t, g.coins, "only coins count toward the coin bonus")
		})
	}
}

func TestPowerupGrantsInvincibility(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Collectibles = []config.CollectibleDef{{X: 100, Y: 360, Kind: "powerup"}}
		lvl.Enemies = []config.EnemyDef{{X: 300, Speed: 0, Dir: 1, PatrolStart: 0, PatrolEnd: 1000}}
	})
	start(g)

	p := &g.world.Player
	assert.True(t, p.Invincible)
	assert.Equal(t, g.cfg.Player.PowerupInvincibility, p.InvincibleTimer)

	p.X = 290
	for range 20 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 3, p.Lives, "enemy contact is ignored while invincible")
}

func TestEnemyContactCostsLife(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Enemies = []config.EnemyDef{{X: 130, Speed: 2, Dir: -1, PatrolStart: 0, PatrolEnd: 1000}}
	})
	res := start(g)

	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 2, g.world.Player.Lives)
	assert.True(t, g.world.Player.Invincible)
	assert.Len(t, g.world.Particles, g.cfg.Particles.EnemyBurst)
	assert.Equal(t, "enemy", res.Events[len(res.Events)-1].Detail)
	assert.True(t, g.world.Enemies[0].Active, "enemies stay after contact")
}

func TestEnemyContactKills(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		cfg.Rules.ContactKills = true
		lvl.Enemies = []config.EnemyDef{{X: 130, Speed: 2, Dir: -1, PatrolStart: 0, PatrolEnd: 1000}}
	})
	start(g)
	assert.Equal(t, PhaseDead, g.Phase())
	assert.Equal(t, 3, g.world.Player.Lives)
}

func TestEnemyPatrolReflects(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Enemies = []config.EnemyDef{{X: 499, Speed: 2, Dir: 1, PatrolStart: 300, PatrolEnd: 500}}
	})
	start(g)

	e := &g.world.Enemies[0]
	assert.Equal(t, 501.0, e.X)
	assert.Equal(t, -1, e.Dir)
	assert.Equal(t, g.world.GroundY-g.cfg.Player.Height, e.Y)

	g.Step(core.NewInputFrame())
	assert.Equal(t, 499.0, e.X)
	assert.Equal(t, -1, e.Dir)

	for range 500 {
		g.Step(core.NewInputFrame())
		assert.GreaterOrEqual(t, e.X, 300.0-e.Speed)
		assert.LessOrEqual(t, e.X, 500.0+e.Speed)
	}
}

func TestEnemyEdgePatrol(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		cfg.Rules.EdgePatrol = true
		lvl.Ground = []config.GroundDef{{X1: 0, X2: 500}, {X1: 650, X2: 3000}}
		lvl.Enemies = []config.EnemyDef{
			{X: 455, Speed: 2, Dir: 1, PatrolStart: 0, PatrolEnd: 10000},
			{X: 479, Speed: 2, Dir: 1, PatrolStart: 0, PatrolEnd: 10000},
		}
	})
	start(g)

	assert.Equal(t, 1, g.world.Enemies[0].Dir, "still over ground")
	assert.Equal(t, -1, g.world.Enemies[1].Dir, "turns at the ledge")
}

func TestDifficultyScalesEnemySpeed(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		cfg.Difficulty = config.DifficultyConfig{
			Enabled:      true,
			InitialLevel: 1,
			Progression:  config.ProgressionConfig{Type: "time", MaxAt: 100},
			Scaling:      config.ScalingConfig{SpeedMultiplier: 1},
		}
		lvl.Enemies = []config.EnemyDef{{X: 800, Speed: 2, Dir: 1, PatrolStart: 0, PatrolEnd: 2000}}
	})
	start(g)
	assert.Equal(t, 804.0, g.world.Enemies[0].X)
}

func TestDeterminism(t *testing.T) {
	lvl, err := config.EmbeddedLevel(config.VariantPlatformer)
	require.NoError(t, err)

	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%40 == 0:
			inputs[i].Set(core.ActionJump)
		}
		if i%7 != 0 {
			inputs[i].Hold(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := NewWithConfig(config.VariantPlatformer, config.DefaultPlatformerConfig(), lvl)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	assert.Equal(t, s1.Hash(), s2.Hash())
	assert.Equal(t, s1.Score, s2.Score)
	assert.Equal(t, s1.Particles, s2.Particles)
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t, func(cfg *config.PlatformerConfig, lvl *config.Level) {
		lvl.Enemies = []config.EnemyDef{{X: 800, Speed: 2, Dir: 1, PatrolStart: 0, PatrolEnd: 2000}}
		lvl.Collectibles = []config.CollectibleDef{{X: 110, Y: 360, Kind: "coin"}}
	})
	snap := g.Snapshot()

	start(g)
	for range 5 {
		g.Step(holding(core.ActionRight))
	}

	assert.Equal(t, PhaseStart, snap.Phase)
	assert.Equal(t, 800.0, snap.Enemies[0].X)
	assert.False(t, snap.Collectibles[0].Collected)
	assert.Empty(t, snap.Particles)
	assert.Equal(t, 100.0, snap.Player.X)
}

func TestSummary(t *testing.T) {
	g := newTestGame(t, nil)
	start(g)
	g.Step(core.NewInputFrame())

	s := g.Summary()
	assert.Equal(t, 2, s.Ticks)
	assert.Equal(t, string(PhasePlaying), s.Outcome)
}

func TestStageVariantFromRegistry(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	raw, err := registry.Create(config.VariantStage)
	require.NoError(t, err)
	g := raw.(*Game)
	g.Reset(core.DefaultConfig())
	require.NoError(t, g.LoadErr())

	assert.Empty(t, g.world.Enemies)
	assert.Empty(t, g.world.Collectibles)
	assert.Equal(t, 700.0, g.world.EndX)

	start(g)
	for range 300 {
		if g.Step(holding(core.ActionRight)).State.GameOver {
			break
		}
	}
	assert.Equal(t, PhaseFinished, g.Phase())
	assert.Zero(t, g.world.Camera.X, "camera range collapses when the level is narrower than the view")
}

func TestPitsVariantFromRegistry(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	raw, err := registry.Create(config.VariantPits)
	require.NoError(t, err)
	g := raw.(*Game)
	g.Reset(core.DefaultConfig())
	require.NoError(t, g.LoadErr())

	assert.True(t, g.cfg.Rules.ContactKills)
	assert.True(t, g.cfg.Rules.EdgePatrol)
	assert.Len(t, g.world.Enemies, 4)
}

func TestBadLevelPathFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetLevelPath("/nonexistent/level.yaml")
	t.Cleanup(func() { SetLevelPath("") })

	g := New(config.VariantPlatformer)
	g.Reset(core.DefaultConfig())
	assert.Error(t, g.LoadErr())
	assert.Len(t, g.world.Ground, 4, "falls back to the embedded layout")
}

func TestLevelIDOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetLevelID("gauntlet")
	t.Cleanup(func() { SetLevelID("") })

	g := New(config.VariantPlatformer)
	g.Reset(core.DefaultConfig())
	require.NoError(t, g.LoadErr())

	want, err := config.EmbeddedLevel("gauntlet")
	require.NoError(t, err)
	assert.Equal(t, want.EndX, g.world.EndX)
}

func TestUseLevelBeatsGlobalLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetLevelID("gauntlet")
	t.Cleanup(func() { SetLevelID("") })

	g := New(config.VariantPlatformer)
	g.UseLevel("stage")
	g.Reset(core.DefaultConfig())
	require.NoError(t, g.LoadErr())
	assert.Equal(t, 700.0, g.world.EndX)
}
