// internal/ui/pause_button.go
package ui

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-cube-train/internal/config"
)

// PauseButtonRL - круглая кнопка паузы: две полосы или треугольник «play».
type PauseButtonRL struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
}

func NewPauseButtonRL(x, y, size float32) *PauseButtonRL {
	return &PauseButtonRL{X: x, Y: y, Size: size}
}

func (b *PauseButtonRL) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		p1 := rl.NewVector2(b.X-size*0.6, b.Y-size*0.8)
		p2 := rl.NewVector2(b.X-size*0.6, b.Y+size*0.8)
		p3 := rl.NewVector2(b.X+size*0.8, b.Y)
		rl.DrawTriangle(p1, p2, p3, config.ActiveColor)
		return
	}
	width := size * 0.35
	height := size * 1.4
	gap := size * 0.3
	rl.DrawRectangleV(rl.NewVector2(b.X-width-gap/2, b.Y-height/2), rl.NewVector2(width, height), config.TextLightColor)
	rl.DrawRectangleV(rl.NewVector2(b.X+gap/2, b.Y-height/2), rl.NewVector2(width, height), config.TextLightColor)
}

func (b *PauseButtonRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
		rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size)
}

func (b *PauseButtonRL) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
