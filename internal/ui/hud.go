// internal/ui/hud.go
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-cube-train/internal/config"
	"go-cube-train/internal/event"
	"go-cube-train/internal/utils"
	"go-cube-train/internal/view"
)

var keyHelp = []string{
	"S shape   P pattern   C clear",
	"E roll easing   M move easing",
	"Space spawning   D direction",
	"arrows orbit   wheel zoom   R auto-rotate",
	"G grid   F9/Esc pause",
	"mouse: bottom panel buttons",
}

// HUD - панель с текущей конфигурацией и подсказкой по клавишам.
// Подписан на события, чтобы индикатор вздрагивал при очистке поля.
type HUD struct {
	font      rl.Font
	indicator *StateIndicatorRL
	clears    int
	lastError string
}

func NewHUD(font rl.Font) *HUD {
	x := float32(config.HUDPadding + config.HUDWidth - 2*config.IndicatorRadius)
	y := float32(config.HUDPadding + 40 + config.IndicatorRadius)
	return &HUD{
		font:      font,
		indicator: NewStateIndicatorRL(x, y, config.IndicatorRadius),
	}
}

func (h *HUD) OnEvent(e event.Event) {
	if e.Type == event.FieldCleared {
		h.clears++
		h.indicator.Pulse()
	}
}

// SetError показывает последнюю отклонённую команду; пустая строка скрывает.
func (h *HUD) SetError(msg string) {
	h.lastError = msg
}

func (h *HUD) Draw(f *view.Frame) {
	cfg := f.Config
	direction := "clockwise"
	if !cfg.Clockwise {
		direction = "counter-clockwise"
	}
	lines := []string{
		fmt.Sprintf("live %d / %d   t=%.2fs", f.Live(), cfg.MaxEntities, f.Time),
		fmt.Sprintf("shape     %s", cfg.ShapeKind),
		fmt.Sprintf("pattern   %s", cfg.SpawnPattern),
		fmt.Sprintf("roll      %s", cfg.RollEasing),
		fmt.Sprintf("move      %s", cfg.MoveEasing),
		fmt.Sprintf("rotation  %s x%d", direction, cfg.RotationCount),
		fmt.Sprintf("angle     %.2f rad", utils.NormalizeAngle(f.Angle)),
		fmt.Sprintf("clears    %d", h.clears),
	}
	if f.Warnings > 0 {
		lines = append(lines, fmt.Sprintf("clamped   %d", f.Warnings))
	}

	height := config.HUDPadding*2 + config.HUDLineHeight*(len(lines)+len(keyHelp)+2)
	rl.DrawRectangle(config.HUDPadding, config.HUDPadding, config.HUDWidth, int32(height), config.PanelColor)
	rl.DrawRectangleLines(config.HUDPadding, config.HUDPadding, config.HUDWidth, int32(height), config.UIBorderColor)

	x := float32(config.HUDPadding * 2)
	y := float32(config.HUDPadding * 2)
	h.text("cube train", x, y, config.OriginColor)
	y += config.HUDLineHeight * 1.5

	state := config.ActiveColor
	if !cfg.SpawningEnabled {
		state = config.InactiveColor
	}
	if f.Paused {
		state = config.UIBorderColor
	}
	h.indicator.Draw(state)

	for _, line := range lines {
		h.text(line, x, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
	y += config.HUDLineHeight / 2
	for _, line := range keyHelp {
		h.text(line, x, y, config.GridColor)
		y += config.HUDLineHeight
	}
	if h.lastError != "" {
		h.text(h.lastError, x, float32(config.HUDPadding*2+height), config.InactiveColor)
	}
}

func (h *HUD) text(s string, x, y float32, c rl.Color) {
	rl.DrawTextEx(h.font, s, rl.NewVector2(x, y), config.HUDFontSize, 1, c)
}
