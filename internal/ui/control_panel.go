// internal/ui/control_panel.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-cube-train/internal/app"
	"go-cube-train/internal/config"
)

const (
	panelButtonWidth  = 92
	panelButtonHeight = 30
	panelButtonGap    = 8
)

var panelLayout = []struct {
	label string
	cmd   app.Command
}{
	{"Shape", app.CmdNextShape},
	{"Pattern", app.CmdNextPattern},
	{"Roll", app.CmdNextRollEasing},
	{"Move", app.CmdNextMoveEasing},
	{"Spawn", app.CmdToggleSpawning},
	{"Direction", app.CmdToggleDirection},
	{"Clear", app.CmdClear},
}

// ControlPanel - ряд кнопок внизу экрана, по кнопке на команду.
type ControlPanel struct {
	buttons  []*Button
	commands []app.Command
	Pause    *PauseButtonRL
}

func NewControlPanel(font rl.Font) *ControlPanel {
	p := &ControlPanel{}
	total := len(panelLayout)*(panelButtonWidth+panelButtonGap) - panelButtonGap
	x := float32(config.ScreenWidth-total) / 2
	y := float32(config.ScreenHeight - panelButtonHeight - config.HUDPadding)
	for _, item := range panelLayout {
		rect := rl.NewRectangle(x, y, panelButtonWidth, panelButtonHeight)
		p.buttons = append(p.buttons, NewButton(rect, item.label, font))
		p.commands = append(p.commands, item.cmd)
		x += panelButtonWidth + panelButtonGap
	}
	p.Pause = NewPauseButtonRL(x+panelButtonHeight/2, y+panelButtonHeight/2, panelButtonHeight/2)
	return p
}

// Clicked возвращает команду кнопки под курсором, если по ней кликнули.
func (p *ControlPanel) Clicked(mousePos rl.Vector2) (app.Command, bool) {
	for i, b := range p.buttons {
		if b.IsClicked(mousePos) {
			return p.commands[i], true
		}
	}
	return 0, false
}

func (p *ControlPanel) Draw(mousePos rl.Vector2) {
	for _, b := range p.buttons {
		b.Draw(mousePos)
	}
	p.Pause.Draw()
}
