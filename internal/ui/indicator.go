// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-cube-train/internal/config"
)

// StateIndicatorRL - кружок состояния, вздрагивающий после Pulse.
type StateIndicatorRL struct {
	X, Y      float32
	Radius    float32
	LastPulse time.Time
}

func NewStateIndicatorRL(x, y, radius float32) *StateIndicatorRL {
	return &StateIndicatorRL{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicatorRL) Draw(stateColor rl.Color) {
	elapsed := time.Since(i.LastPulse).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, stateColor)
	// Кольцо вместо толстой обводки
	rl.DrawRing(rl.NewVector2(i.X, i.Y), currentRadius, currentRadius+config.UIBorderWidth, 0, 360, 36, config.UIBorderColor)
}

// Pulse запускает анимацию вздрагивания.
func (i *StateIndicatorRL) Pulse() {
	i.LastPulse = time.Now()
}
