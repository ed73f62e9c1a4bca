// pkg/render/terminal.go
package render

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"go-cube-train/internal/config"
	"go-cube-train/internal/shape"
	"go-cube-train/internal/view"
)

var glyphs = map[shape.Kind]rune{
	shape.Cube:         '■',
	shape.Tetrahedron:  '▲',
	shape.Octahedron:   '◆',
	shape.Dodecahedron: '⬟',
	shape.Icosahedron:  '⬢',
	shape.Torus:        'o',
	shape.Sphere:       '●',
	shape.Capsule:      '▮',
}

const completedGlyph = '·'

// Terminal draws frames top-down onto a tcell screen. Newer entities are
// drawn last, so they win a shared cell.
type Terminal struct {
	screen tcell.Screen
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Viewport() Viewport {
	w, h := t.screen.Size()
	// первая строка занята статусом
	return Viewport{Width: w, Height: h - 1, Aspect: 2}
}

func (t *Terminal) Render(f view.Frame) {
	t.screen.Clear()
	vp := t.Viewport()

	if x, y, ok := vp.Project(0, 0); ok {
		t.screen.SetContent(x, y+1, '+', nil, styleOf(config.OriginColor))
	}
	for i := range f.Entities {
		e := &f.Entities[i]
		x, y, ok := vp.Project(e.Position.X, e.Position.Z)
		if !ok {
			continue
		}
		glyph, known := glyphs[e.Kind]
		if !known {
			glyph = '?'
		}
		if e.Completed {
			glyph = completedGlyph
		}
		c := Fade(FaceColor(e.Faces), config.BackgroundColor, e.Progress)
		t.screen.SetContent(x, y+1, glyph, nil, styleOf(c))
	}

	t.status(f)
	t.screen.Show()
}

func (t *Terminal) status(f view.Frame) {
	state := "on"
	if !f.Config.SpawningEnabled {
		state = "off"
	}
	if f.Paused {
		state = "paused"
	}
	line := fmt.Sprintf("live %d/%d  %s  %s  roll %s  move %s  spawn %s  [s p e m space d q]",
		f.Live(), f.Config.MaxEntities, f.Config.ShapeKind, f.Config.SpawnPattern,
		f.Config.RollEasing, f.Config.MoveEasing, state)
	style := styleOf(config.TextLightColor)
	w, _ := t.screen.Size()
	for i, r := range []rune(line) {
		if i >= w {
			break
		}
		t.screen.SetContent(i, 0, r, nil, style)
	}
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorReset)
}
