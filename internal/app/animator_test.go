package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cube-train/internal/config"
	"go-cube-train/internal/easing"
	"go-cube-train/internal/event"
	"go-cube-train/internal/shape"
	"go-cube-train/internal/spawn"
	"go-cube-train/internal/types"
)

const eps = 1e-9

// tape records engine events in order.
type tape struct {
	spawned []event.EntityData
	evicted []event.EntityData
	cleared []event.ClearData
	changed []event.ConfigData
}

func (t *tape) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.EntityData:
		if e.Type == event.EntitySpawned {
			t.spawned = append(t.spawned, d)
		} else {
			t.evicted = append(t.evicted, d)
		}
	case event.ClearData:
		t.cleared = append(t.cleared, d)
	case event.ConfigData:
		t.changed = append(t.changed, d)
	}
}

func newTestAnimator(t *testing.T, cfg *config.Config) (*Animator, *tape, *FixedClock) {
	t.Helper()
	d := event.NewDispatcher()
	rec := &tape{}
	d.SubscribeAll(rec)
	a, err := New(cfg, WithSeed(7), WithDispatcher(d))
	require.NoError(t, err)
	return a, rec, NewFixedClock()
}

func step(t *testing.T, a *Animator, c *FixedClock) {
	t.Helper()
	require.NoError(t, a.Tick(c.Advance()))
}

func TestScenarioA_SpawnCountOverOneSecond(t *testing.T) {
	a, rec, clock := newTestAnimator(t, config.Default())

	for clock.Now()+clock.Step <= 1.0+eps {
		step(t, a, clock)
	}

	// at the 0.016 step the 0.05 interval needs four ticks: 1, 5, 9, ..., 61
	assert.Len(t, rec.spawned, 16)
	assert.Empty(t, rec.evicted)
	assert.Equal(t, 16, a.Len())
}

func TestSpawnGapNeverShorterThanInterval(t *testing.T) {
	cfg := config.Default()
	a, rec, clock := newTestAnimator(t, cfg)
	for i := 0; i < 200; i++ {
		step(t, a, clock)
	}
	require.Greater(t, len(rec.spawned), 10)
	for i := 1; i < len(rec.spawned); i++ {
		gap := rec.spawned[i].Time - rec.spawned[i-1].Time
		assert.GreaterOrEqual(t, gap, cfg.SpawnInterval-eps, "spawn %d", i)
	}
}

func TestScenarioB_EvictWithSpawnWhenFull(t *testing.T) {
	cfg := config.Default()
	cfg.MaxEntities = 1
	cfg.RollDuration = 0.1
	a, rec, clock := newTestAnimator(t, cfg)

	for len(rec.spawned) < 3 {
		step(t, a, clock)
		require.LessOrEqual(t, a.Len(), 1)
		require.Less(t, clock.Now(), 2.0, "third spawn never happened")
	}

	require.Len(t, rec.evicted, 2)
	assert.Equal(t, rec.spawned[0].ID, rec.evicted[0].ID)
	assert.Equal(t, rec.spawned[1].ID, rec.evicted[1].ID)
	// eviction and the replacing spawn share a tick
	assert.Equal(t, rec.spawned[1].Time, rec.evicted[0].Time)
	assert.Equal(t, rec.spawned[2].Time, rec.evicted[1].Time)
	// the evicted entity had finished its animation
	assert.GreaterOrEqual(t, rec.evicted[0].Time-rec.spawned[0].Time, cfg.RollDuration-eps)
}

func TestScenarioD_ShapeSwitchClearsField(t *testing.T) {
	a, rec, clock := newTestAnimator(t, config.Default())
	for a.Len() < 10 {
		step(t, a, clock)
	}
	require.Equal(t, 10, a.Len())
	require.NotZero(t, a.Angle())
	before := a.Epoch()

	require.NoError(t, a.SetShapeKind(string(shape.Sphere)))

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0.0, a.Angle())
	assert.NotEqual(t, before, a.Epoch())
	require.Len(t, rec.cleared, 1)
	assert.Equal(t, 10, rec.cleared[0].Removed)
	assert.Equal(t, "shape", rec.cleared[0].Reason)
	assert.Zero(t, a.Tracker().LiveGeometries())
	assert.Zero(t, a.Tracker().LiveMaterials())

	// the timer restarts: the next tick spawns at angle zero
	step(t, a, clock)
	require.Len(t, rec.spawned, 11)
	assert.Equal(t, 0.0, rec.spawned[10].Angle)
	assert.Equal(t, a.Epoch(), rec.spawned[10].Epoch)
}

func TestPatternSwitchClearsField(t *testing.T) {
	a, rec, clock := newTestAnimator(t, config.Default())
	for i := 0; i < 20; i++ {
		step(t, a, clock)
	}
	require.NoError(t, a.SetSpawnPattern("heart"))
	assert.Equal(t, 0, a.Len())
	require.Len(t, rec.cleared, 1)
	assert.Equal(t, "pattern", rec.cleared[0].Reason)
}

func TestDirectConfigWriteClearsOnNextTick(t *testing.T) {
	a, rec, clock := newTestAnimator(t, config.Default())
	for i := 0; i < 20; i++ {
		step(t, a, clock)
	}
	live := a.Len()
	require.NotZero(t, live)

	a.Config().ShapeKind = string(shape.Torus)
	step(t, a, clock)

	require.Len(t, rec.cleared, 1)
	assert.Equal(t, live, rec.cleared[0].Removed)
	assert.Equal(t, 1, a.Len())
}

func TestCapacityNeverExceeded(t *testing.T) {
	cfg := config.Default()
	cfg.MaxEntities = 5
	cfg.RollDuration = 0.5
	a, rec, clock := newTestAnimator(t, cfg)

	for i := 0; i < 400; i++ {
		step(t, a, clock)
		require.LessOrEqual(t, a.Len(), 5)
	}
	assert.NotEmpty(t, rec.evicted)

	// FIFO: evictions follow spawn order exactly
	for i, ev := range rec.evicted {
		assert.Equal(t, rec.spawned[i].ID, ev.ID)
	}
}

func TestIDsAndAnglesMonotonicWithinEpoch(t *testing.T) {
	a, rec, clock := newTestAnimator(t, config.Default())
	for i := 0; i < 200; i++ {
		step(t, a, clock)
	}
	require.Greater(t, len(rec.spawned), 2)
	assert.Equal(t, 0.0, rec.spawned[0].Angle)
	for i := 1; i < len(rec.spawned); i++ {
		assert.Greater(t, rec.spawned[i].ID, rec.spawned[i-1].ID)
		assert.Greater(t, rec.spawned[i].Angle, rec.spawned[i-1].Angle)
	}
}

func TestCounterClockwiseAngleDecreases(t *testing.T) {
	cfg := config.Default()
	cfg.Clockwise = false
	a, _, clock := newTestAnimator(t, cfg)
	step(t, a, clock)
	assert.InDelta(t, -cfg.RotationSpeed*config.TickAngularStep, a.Angle(), eps)
}

func TestLoweringCapacityEvictsOnePerTick(t *testing.T) {
	cfg := config.Default()
	cfg.RollDuration = 0.1
	a, rec, clock := newTestAnimator(t, cfg)
	for a.Len() < 20 {
		step(t, a, clock)
	}
	require.NoError(t, a.Update(func(c *config.Config) {
		c.MaxEntities = 5
		c.SpawningEnabled = false
	}))

	prev := a.Len()
	for a.Len() > 5 {
		step(t, a, clock)
		assert.GreaterOrEqual(t, a.Len(), prev-1)
		prev = a.Len()
	}
	assert.Equal(t, 5, a.Len())
	assert.Len(t, rec.evicted, 15)
}

func TestSpawningDisabledStillRotates(t *testing.T) {
	cfg := config.Default()
	cfg.SpawningEnabled = false
	a, rec, clock := newTestAnimator(t, cfg)
	for i := 0; i < 10; i++ {
		step(t, a, clock)
	}
	assert.Empty(t, rec.spawned)
	assert.InDelta(t, 10*config.TickAngularStep, a.Angle(), eps)
}

func TestPoseFollowsEasings(t *testing.T) {
	cfg := config.Default()
	cfg.RollEasing = "linear"
	cfg.MoveEasing = "linear"
	cfg.RollDuration = 1
	a, _, clock := newTestAnimator(t, cfg)

	step(t, a, clock)
	f := a.Snapshot()
	require.Len(t, f.Entities, 1)
	first := f.Entities[0]
	assert.InDelta(t, cfg.SpawnRadius, first.Position.X, eps)
	assert.InDelta(t, 0, first.Position.Z, eps)
	assert.InDelta(t, 0, first.Progress, eps)

	// advance half the roll duration
	for clock.Now() < 0.016+0.5-eps {
		step(t, a, clock)
	}
	view := findView(a.Snapshot(), first.ID)
	require.NotNil(t, view)
	p := view.Progress
	assert.InDelta(t, cfg.SpawnRadius*(1-p), view.Position.X, 1e-6)
	assert.InDelta(t, -p*math.Pi*float64(cfg.RotationCount), view.RotationX, 1e-6)
	assert.Equal(t, 0.0, view.RotationY)
}

func TestCompletedPoseIsFrozen(t *testing.T) {
	cfg := config.Default()
	cfg.RollDuration = 0.5
	a, _, clock := newTestAnimator(t, cfg)
	for clock.Now() < 0.6 {
		step(t, a, clock)
	}
	first := findView(a.Snapshot(), types.EntityID(1))
	require.NotNil(t, first)
	require.True(t, first.Completed)
	assert.Equal(t, 1.0, first.Progress)
	assert.InDelta(t, 0, first.Position.Norm(), eps)
	assert.InDelta(t, -math.Pi*float64(cfg.RotationCount), first.RotationX, eps)

	// changing the easing after completion does not move it
	require.NoError(t, a.SetRollEasing("easeOutElastic"))
	step(t, a, clock)
	again := findView(a.Snapshot(), types.EntityID(1))
	require.NotNil(t, again)
	assert.Equal(t, first.RotationX, again.RotationX)
}

func TestCompletionFollowsRaisedRollDuration(t *testing.T) {
	cfg := config.Default()
	cfg.RollDuration = 0.5
	a, rec, clock := newTestAnimator(t, cfg)
	for clock.Now() < 0.62 {
		step(t, a, clock)
	}
	first := findView(a.Snapshot(), types.EntityID(1))
	require.NotNil(t, first)
	require.True(t, first.Completed)

	require.NoError(t, a.Update(func(c *config.Config) {
		c.RollDuration = 5
		c.MaxEntities = 1
		c.SpawningEnabled = false
	}))
	live := a.Len()
	step(t, a, clock)

	again := findView(a.Snapshot(), types.EntityID(1))
	require.NotNil(t, again)
	assert.False(t, again.Completed)
	assert.InDelta(t, (clock.Now()-0.016)/5, again.Progress, 1e-6)
	assert.Less(t, again.Progress, 1.0)
	// an unfinished head is not evicted even over capacity
	assert.Equal(t, live, a.Len())
	assert.Empty(t, rec.evicted)
}

func TestUnknownNamesAreRejected(t *testing.T) {
	a, rec, _ := newTestAnimator(t, config.Default())

	err := a.SetRollEasing("easeSideways")
	var ce *config.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "roll_easing", ce.Field)
	assert.ErrorIs(t, err, easing.ErrUnknownEasing)
	assert.Equal(t, config.DefaultEasing, a.Config().RollEasing)

	assert.ErrorIs(t, a.SetSpawnPattern("hexagon"), spawn.ErrUnknownPattern)
	assert.ErrorIs(t, a.SetShapeKind("teapot"), shape.ErrUnknownKind)
	assert.Equal(t, config.DefaultShapeKind, a.Config().ShapeKind)

	assert.Empty(t, rec.cleared)
	assert.Empty(t, rec.changed)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MoveEasing = "bogus"
	_, err := New(cfg)
	assert.ErrorIs(t, err, easing.ErrUnknownEasing)

	cfg = config.Default()
	cfg.SpawnInterval = 0
	_, err = New(cfg)
	assert.ErrorIs(t, err, config.ErrOutOfRange)
}

func TestDirectWriteOfUnknownNameFailsTick(t *testing.T) {
	a, _, clock := newTestAnimator(t, config.Default())
	a.Config().SpawnPattern = "nowhere"
	err := a.Tick(clock.Advance())
	assert.ErrorIs(t, err, spawn.ErrUnknownPattern)
}

func TestConfigChangedEvents(t *testing.T) {
	a, rec, _ := newTestAnimator(t, config.Default())
	require.NoError(t, a.ToggleDirection())
	require.NoError(t, a.ToggleSpawning())
	require.Len(t, rec.changed, 2)
	assert.Equal(t, event.ConfigData{Field: "clockwise", Value: "false"}, rec.changed[0])
	assert.Equal(t, event.ConfigData{Field: "spawning_enabled", Value: "false"}, rec.changed[1])
}

func TestToggleReportsInvalidConfig(t *testing.T) {
	a, rec, _ := newTestAnimator(t, config.Default())
	a.Config().SpawnInterval = 0

	err := a.ToggleSpawning()
	assert.ErrorIs(t, err, config.ErrOutOfRange)
	assert.True(t, a.Config().SpawningEnabled)

	err = a.Apply(CmdToggleDirection)
	assert.ErrorIs(t, err, config.ErrOutOfRange)
	assert.True(t, a.Config().Clockwise)
	assert.Empty(t, rec.changed)
}

func TestRotationSettingsThatStallTheAngleAreRejected(t *testing.T) {
	a, _, clock := newTestAnimator(t, config.Default())
	step(t, a, clock)

	for _, speed := range []float64{0, -1, math.NaN()} {
		err := a.Update(func(c *config.Config) { c.RotationSpeed = speed })
		assert.ErrorIs(t, err, config.ErrOutOfRange)
		assert.Equal(t, config.DefaultRotationSpeed, a.Config().RotationSpeed)
	}
	assert.ErrorIs(t, a.Update(func(c *config.Config) { c.RotationCount = 0 }), config.ErrOutOfRange)

	before := a.Angle()
	step(t, a, clock)
	assert.Greater(t, a.Angle(), before)
}

func TestCloseReleasesEverything(t *testing.T) {
	tracker := shape.NewTracker()
	a, err := New(config.Default(), WithSeed(1), WithTracker(tracker))
	require.NoError(t, err)
	clock := NewFixedClock()
	for i := 0; i < 30; i++ {
		require.NoError(t, a.Tick(clock.Advance()))
	}
	require.NotZero(t, tracker.LiveMaterials())

	a.Close()
	assert.Zero(t, tracker.LiveGeometries())
	assert.Zero(t, tracker.LiveMaterials())
	assert.ErrorIs(t, a.Tick(clock.Advance()), ErrClosed)
	assert.NotPanics(t, a.Close)
}

func TestEvictionReleasesShapes(t *testing.T) {
	cfg := config.Default()
	cfg.MaxEntities = 3
	cfg.RollDuration = 0.5
	cfg.ShapeKind = string(shape.Icosahedron)
	tracker := shape.NewTracker()
	a, err := New(cfg, WithSeed(3), WithTracker(tracker))
	require.NoError(t, err)
	clock := NewFixedClock()
	for i := 0; i < 300; i++ {
		require.NoError(t, a.Tick(clock.Advance()))
	}
	// one shared geometry and twenty materials per live icosahedron
	assert.Equal(t, a.Len(), tracker.LiveGeometries())
	assert.Equal(t, 20*a.Len(), tracker.LiveMaterials())
}

func findView(f Frame, id types.EntityID) *EntityView {
	for i := range f.Entities {
		if f.Entities[i].ID == id {
			return &f.Entities[i]
		}
	}
	return nil
}
