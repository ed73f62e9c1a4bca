// internal/system/lifecycle.go
package system

import (
	"errors"

	"github.com/golang/geo/r3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-cube-train/internal/component"
	"go-cube-train/internal/config"
	"go-cube-train/internal/entity"
	"go-cube-train/internal/event"
	"go-cube-train/internal/logger"
	"go-cube-train/internal/shape"
	"go-cube-train/internal/spawn"
	"go-cube-train/internal/types"
)

// timerEpsilon гасит накопленную ошибку сложения шагов 0.016.
const timerEpsilon = 1e-9

// LifecycleSystem создаёт сущности по таймеру и удаляет голову очереди.
type LifecycleSystem struct {
	ecs      *entity.ECS
	cfg      *config.Config
	patterns *spawn.Library
	factory  *shape.Factory
	events   *event.Dispatcher

	epoch     uuid.UUID
	angle     float64 // аккумулятор угла паттерна
	lastSpawn float64
	primed    bool // false - следующий спавн сразу
}

func NewLifecycleSystem(ecs *entity.ECS, cfg *config.Config, patterns *spawn.Library, factory *shape.Factory, events *event.Dispatcher) *LifecycleSystem {
	return &LifecycleSystem{
		ecs:      ecs,
		cfg:      cfg,
		patterns: patterns,
		factory:  factory,
		events:   events,
		epoch:    uuid.New(),
	}
}

// Angle - текущее значение аккумулятора угла.
func (s *LifecycleSystem) Angle() float64 { return s.angle }

// Epoch - ID текущей эпохи (меняется при каждой полной очистке).
func (s *LifecycleSystem) Epoch() uuid.UUID { return s.epoch }

// Update выполняет фазу спавна тика и сдвигает аккумулятор угла.
func (s *LifecycleSystem) Update(now float64) error {
	var err error
	if s.cfg.SpawningEnabled && s.due(now) {
		err = s.trySpawn(now)
	}
	s.angle += s.cfg.RotationSpeed * config.TickAngularStep * s.cfg.Direction()
	return err
}

// EvictOverCapacity удаляет голову, если очередь длиннее лимита (лимит
// могли уменьшить на ходу). Не больше одной сущности за тик.
func (s *LifecycleSystem) EvictOverCapacity(now float64) {
	if s.ecs.Len() > s.cfg.MaxEntities && s.headCompleted(now) {
		s.evictHead(now)
	}
}

// FullClear освобождает все сущности и начинает новую эпоху.
func (s *LifecycleSystem) FullClear(reason string) int {
	removed := s.ecs.Clear()
	for _, r := range removed {
		s.release(r)
	}

	previous := s.epoch
	s.epoch = uuid.New()
	s.angle = 0
	s.primed = false

	logger.Info("field cleared",
		zap.String("reason", reason),
		zap.Int("removed", len(removed)),
		logger.Epoch(s.epoch),
	)
	s.events.Dispatch(event.Event{Type: event.FieldCleared, Data: event.ClearData{
		Epoch:    s.epoch,
		Previous: previous,
		Removed:  len(removed),
		Reason:   reason,
	}})
	return len(removed)
}

// due: с прошлого спавна прошло не меньше SpawnInterval.
func (s *LifecycleSystem) due(now float64) bool {
	return !s.primed || now-s.lastSpawn >= s.cfg.SpawnInterval-timerEpsilon
}

func (s *LifecycleSystem) trySpawn(now float64) error {
	if s.ecs.Len() >= s.cfg.MaxEntities {
		if !s.headCompleted(now) {
			// Ждём, пока голова доиграет; таймер остаётся взведённым.
			return nil
		}
		s.evictHead(now)
	}

	pos, err := s.patterns.Spawn(s.cfg.SpawnPattern, s.angle, s.cfg.SpawnRadius)
	if err != nil {
		return &config.ConfigError{Field: "spawn_pattern", Value: s.cfg.SpawnPattern, Err: err}
	}
	sh, err := s.factory.Build(s.cfg.ShapeKind, s.cfg.EntitySize)
	if err != nil {
		return &config.ConfigError{Field: "shape_kind", Value: s.cfg.ShapeKind, Err: err}
	}

	id := s.ecs.NewEntity()
	s.ecs.Spawns[id] = &component.Spawn{Time: now, Angle: s.angle, Position: pos}
	s.ecs.Transforms[id] = &component.Transform{Position: r3.Vector{X: pos.X, Z: pos.Z}, RotationY: s.angle}
	s.ecs.Renderables[id] = &component.Renderable{Shape: sh}

	s.primed = true
	s.lastSpawn = now

	logger.Debug("entity spawned", logger.EntityID(id), zap.Float64("angle", s.angle))
	s.events.Dispatch(event.Event{Type: event.EntitySpawned, Data: s.entityData(id, now)})
	return nil
}

func (s *LifecycleSystem) headCompleted(now float64) bool {
	id, ok := s.ecs.Head()
	if !ok {
		return false
	}
	sp, ok := s.ecs.Spawns[id]
	return ok && progress(now, sp.Time, s.cfg.RollDuration) >= 1
}

func (s *LifecycleSystem) evictHead(now float64) {
	data := event.EntityData{}
	if id, ok := s.ecs.Head(); ok {
		data = s.entityData(id, now)
	}
	id, r, ok := s.ecs.PopHead()
	if !ok {
		return
	}
	s.release(r)
	logger.Debug("entity evicted", logger.EntityID(id))
	s.events.Dispatch(event.Event{Type: event.EntityEvicted, Data: data})
}

func (s *LifecycleSystem) release(r *component.Renderable) {
	if r == nil || r.Shape == nil {
		return
	}
	if err := r.Shape.Dispose(); err != nil {
		if errors.Is(err, shape.ErrAlreadyDisposed) {
			logger.DPanic("shape released twice", zap.Error(err))
			return
		}
		logger.Error("failed to release shape", zap.Error(err))
	}
}

func (s *LifecycleSystem) entityData(id types.EntityID, now float64) event.EntityData {
	d := event.EntityData{ID: id, Epoch: s.epoch, Time: now, Shape: s.cfg.ShapeKind}
	if sp, ok := s.ecs.Spawns[id]; ok {
		d.Angle = sp.Angle
	}
	return d
}
