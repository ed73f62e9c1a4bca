// internal/system/animation.go
package system

import (
	"math"

	"github.com/golang/geo/r3"

	"go-cube-train/internal/config"
	"go-cube-train/internal/easing"
	"go-cube-train/internal/entity"
	"go-cube-train/internal/utils"
)

// AnimationSystem пересчитывает позу каждой живой сущности.
type AnimationSystem struct {
	ecs *entity.ECS
	cfg *config.Config
}

func NewAnimationSystem(ecs *entity.ECS, cfg *config.Config) *AnimationSystem {
	return &AnimationSystem{ecs: ecs, cfg: cfg}
}

func progress(now, spawnTime, rollDuration float64) float64 {
	if rollDuration <= 0 {
		return 1
	}
	return utils.Clamp01((now - spawnTime) / rollDuration)
}

// Update - имена функций уже проверены Animator.Update, поэтому
// ошибка здесь означает прямую запись в конфиг мимо валидации.
func (s *AnimationSystem) Update(now float64) error {
	roll, err := easing.Lookup(s.cfg.RollEasing)
	if err != nil {
		return &config.ConfigError{Field: "roll_easing", Value: s.cfg.RollEasing, Err: err}
	}
	move, err := easing.Lookup(s.cfg.MoveEasing)
	if err != nil {
		return &config.ConfigError{Field: "move_easing", Value: s.cfg.MoveEasing, Err: err}
	}

	spin := math.Pi * float64(s.cfg.RotationCount) * s.cfg.Direction()
	for _, id := range s.ecs.Order {
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		sp := s.ecs.Spawns[id]

		// Прогресс выводится заново каждый тик: RollDuration мог вырасти.
		p := progress(now, sp.Time, s.cfg.RollDuration)
		frozen := tr.Completed && p >= 1
		tr.Progress = p
		tr.Completed = p >= 1
		if frozen {
			continue
		}
		m := move(p)
		tr.Position = r3.Vector{X: utils.Lerp(sp.Position.X, 0, m), Z: utils.Lerp(sp.Position.Z, 0, m)}
		tr.RotationY = sp.Angle
		tr.RotationX = -roll(p) * spin
	}
	return nil
}
