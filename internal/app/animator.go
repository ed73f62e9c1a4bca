// internal/app/animator.go
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-cube-train/internal/config"
	"go-cube-train/internal/easing"
	"go-cube-train/internal/entity"
	"go-cube-train/internal/event"
	"go-cube-train/internal/logger"
	"go-cube-train/internal/shape"
	"go-cube-train/internal/spawn"
	"go-cube-train/internal/system"
	"go-cube-train/internal/utils"
)

// ErrClosed is returned by Tick after Close.
var ErrClosed = errors.New("animator closed")

// Animator owns the live-entity queue and runs one simulation tick at a
// time. It is not safe for concurrent use: hosts call Tick, Update and
// the setters from the goroutine that drives frames.
type Animator struct {
	cfg       *config.Config
	ecs       *entity.ECS
	events    *event.Dispatcher
	patterns  *spawn.Library
	factory   *shape.Factory
	lifecycle *system.LifecycleSystem
	animation *system.AnimationSystem

	// имена, при которых была создана текущая эпоха
	lastPattern string
	lastShape   string

	now    float64
	closed bool
}

type options struct {
	seed    int64
	events  *event.Dispatcher
	tracker *shape.Tracker
}

// Option configures New.
type Option func(*options)

// WithSeed fixes the PRNG used by the random pattern and face colors.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithDispatcher routes engine events to d instead of a private dispatcher.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(o *options) { o.events = d }
}

// WithTracker shares a resource tracker, mostly for leak checks in tests.
func WithTracker(t *shape.Tracker) Option {
	return func(o *options) { o.tracker = t }
}

// New creates an animator reading cfg by reference.
func New(cfg *config.Config, opts ...Option) (*Animator, error) {
	o := options{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.events == nil {
		o.events = event.NewDispatcher()
	}
	if o.tracker == nil {
		o.tracker = shape.NewTracker()
	}

	rng := utils.NewPRNGService(o.seed)
	a := &Animator{
		cfg:      cfg,
		ecs:      entity.NewECS(),
		events:   o.events,
		patterns: spawn.NewLibrary(rng),
		factory:  shape.NewFactory(rng, o.tracker),
	}
	if err := a.check(); err != nil {
		return nil, err
	}
	a.lifecycle = system.NewLifecycleSystem(a.ecs, cfg, a.patterns, a.factory, a.events)
	a.animation = system.NewAnimationSystem(a.ecs, cfg)
	a.lastPattern, a.lastShape = cfg.SpawnPattern, cfg.ShapeKind

	logger.Info("animator created",
		zap.String("shape", cfg.ShapeKind),
		zap.String("pattern", cfg.SpawnPattern),
		logger.Epoch(a.lifecycle.Epoch()),
	)
	return a, nil
}

// Config returns the live configuration. Writes through it are picked up
// at the next Tick; prefer Update, which validates.
func (a *Animator) Config() *config.Config { return a.cfg }

// Events returns the dispatcher the animator publishes to.
func (a *Animator) Events() *event.Dispatcher { return a.events }

// Patterns returns the pattern library, for control surfaces cycling names.
func (a *Animator) Patterns() *spawn.Library { return a.patterns }

// Tracker returns the shape resource tracker.
func (a *Animator) Tracker() *shape.Tracker { return a.factory.Tracker() }

// Tick advances the simulation to now (seconds of simulated time).
func (a *Animator) Tick(now float64) error {
	if a.closed {
		return ErrClosed
	}
	start := time.Now()
	a.now = now
	a.ecs.GameTime = now

	if a.cfg.SpawnPattern != a.lastPattern || a.cfg.ShapeKind != a.lastShape {
		if err := a.check(); err != nil {
			return err
		}
		a.clearForChange()
	}

	err := a.lifecycle.Update(now)
	if aerr := a.animation.Update(now); err == nil {
		err = aerr
	}
	a.lifecycle.EvictOverCapacity(now)

	a.events.Dispatch(event.Event{Type: event.TickDone, Data: event.TickData{
		Time:     now,
		Live:     a.ecs.Len(),
		Duration: time.Since(start).Seconds(),
	}})
	return err
}

// Update applies fn to the configuration between ticks. On failure the
// configuration is restored and a *config.ConfigError is returned. A
// changed pattern or shape clears the field immediately.
func (a *Animator) Update(fn func(cfg *config.Config)) error {
	prev := a.cfg.Clone()
	fn(a.cfg)
	if err := a.check(); err != nil {
		*a.cfg = *prev
		logger.Warn("config change rejected", zap.Error(err))
		return err
	}

	for _, c := range diff(prev, a.cfg) {
		a.events.Dispatch(event.Event{Type: event.ConfigChanged, Data: c})
	}
	if a.cfg.SpawnPattern != a.lastPattern || a.cfg.ShapeKind != a.lastShape {
		a.clearForChange()
	}
	return nil
}

// SetShapeKind switches the shape kind; the field is cleared.
func (a *Animator) SetShapeKind(kind string) error {
	return a.Update(func(cfg *config.Config) { cfg.ShapeKind = kind })
}

// SetSpawnPattern switches the spawn pattern; the field is cleared.
func (a *Animator) SetSpawnPattern(name string) error {
	return a.Update(func(cfg *config.Config) { cfg.SpawnPattern = name })
}

func (a *Animator) SetRollEasing(name string) error {
	return a.Update(func(cfg *config.Config) { cfg.RollEasing = name })
}

func (a *Animator) SetMoveEasing(name string) error {
	return a.Update(func(cfg *config.Config) { cfg.MoveEasing = name })
}

// ToggleSpawning flips spawning; like any Update it is rolled back and
// reported when the rest of the configuration is invalid.
func (a *Animator) ToggleSpawning() error {
	return a.Update(func(cfg *config.Config) { cfg.SpawningEnabled = !cfg.SpawningEnabled })
}

func (a *Animator) ToggleDirection() error {
	return a.Update(func(cfg *config.Config) { cfg.Clockwise = !cfg.Clockwise })
}

// FullClear releases every entity regardless of its state and resets the
// spawn timer and angle accumulator.
func (a *Animator) FullClear() int {
	return a.lifecycle.FullClear("manual")
}

// Len is the number of live entities.
func (a *Animator) Len() int { return a.ecs.Len() }

// Angle is the current spawn-angle accumulator.
func (a *Animator) Angle() float64 { return a.lifecycle.Angle() }

// Epoch identifies the current clear epoch.
func (a *Animator) Epoch() uuid.UUID { return a.lifecycle.Epoch() }

// Warnings counts degenerate pattern inputs clamped so far.
func (a *Animator) Warnings() int { return a.patterns.Warnings() }

// Close releases every shape. Further ticks return ErrClosed.
func (a *Animator) Close() {
	if a.closed {
		return
	}
	a.lifecycle.FullClear("close")
	a.closed = true
}

func (a *Animator) clearForChange() {
	reason := "pattern"
	if a.cfg.ShapeKind != a.lastShape {
		reason = "shape"
	}
	a.lifecycle.FullClear(reason)
	a.lastPattern, a.lastShape = a.cfg.SpawnPattern, a.cfg.ShapeKind
}

// check validates every name against the registries and the numeric
// values against what the tick needs.
func (a *Animator) check() error {
	if _, err := easing.Lookup(a.cfg.RollEasing); err != nil {
		return &config.ConfigError{Field: "roll_easing", Value: a.cfg.RollEasing, Err: err}
	}
	if _, err := easing.Lookup(a.cfg.MoveEasing); err != nil {
		return &config.ConfigError{Field: "move_easing", Value: a.cfg.MoveEasing, Err: err}
	}
	if _, err := a.patterns.Lookup(a.cfg.SpawnPattern); err != nil {
		return &config.ConfigError{Field: "spawn_pattern", Value: a.cfg.SpawnPattern, Err: err}
	}
	if err := shape.Validate(a.cfg.ShapeKind); err != nil {
		return &config.ConfigError{Field: "shape_kind", Value: a.cfg.ShapeKind, Err: err}
	}
	return a.cfg.CheckRuntime()
}

func diff(prev, cur *config.Config) []event.ConfigData {
	var out []event.ConfigData
	add := func(field string, before, after interface{}) {
		if before != after {
			out = append(out, event.ConfigData{Field: field, Value: fmt.Sprint(after)})
		}
	}
	add("roll_duration", prev.RollDuration, cur.RollDuration)
	add("spawn_interval", prev.SpawnInterval, cur.SpawnInterval)
	add("entity_size", prev.EntitySize, cur.EntitySize)
	add("max_entities", prev.MaxEntities, cur.MaxEntities)
	add("rotation_count", prev.RotationCount, cur.RotationCount)
	add("spawning_enabled", prev.SpawningEnabled, cur.SpawningEnabled)
	add("spawn_radius", prev.SpawnRadius, cur.SpawnRadius)
	add("rotation_speed", prev.RotationSpeed, cur.RotationSpeed)
	add("clockwise", prev.Clockwise, cur.Clockwise)
	add("roll_easing", prev.RollEasing, cur.RollEasing)
	add("move_easing", prev.MoveEasing, cur.MoveEasing)
	add("spawn_pattern", prev.SpawnPattern, cur.SpawnPattern)
	add("shape_kind", prev.ShapeKind, cur.ShapeKind)
	return out
}
