// pkg/render/topdown.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-cube-train/internal/config"
	"go-cube-train/internal/view"
)

// TopDown рисует кадр сверху на ebiten.Image: круг на сущность, штрих
// показывает фазу «перекатывания».
type TopDown struct {
	frame    view.Frame
	fontFace font.Face
	width    int
	height   int
}

func NewTopDown(width, height int) *TopDown {
	return &TopDown{fontFace: basicfont.Face7x13, width: width, height: height}
}

// Render запоминает кадр до следующего Draw.
func (r *TopDown) Render(f view.Frame) {
	r.frame = f
}

func (r *TopDown) Viewport() Viewport {
	return Viewport{Width: r.width, Height: r.height, Aspect: 1}
}

func (r *TopDown) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vp := r.Viewport()
	unit := float32(r.height) / config.WorldExtent

	r.drawGrid(screen, vp, unit)

	for i := range r.frame.Entities {
		e := &r.frame.Entities[i]
		x, y, ok := vp.Project(e.Position.X, e.Position.Z)
		if !ok {
			continue
		}
		c := Fade(FaceColor(e.Faces), config.BackgroundColor, e.Progress)
		radius := float32(e.Size) * unit * 0.5
		if radius < 2 {
			radius = 2
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, c, true)

		// Штрих вдоль направления спавна, повёрнутый на фазу качения.
		phase := e.RotationY + e.RotationX
		dx := float32(math.Cos(phase)) * radius
		dy := float32(math.Sin(phase)) * radius
		vector.StrokeLine(screen, float32(x), float32(y), float32(x)+dx, float32(y)+dy, 1.5, DarkenColor(c), true)
	}

	r.drawStatus(screen)
}

func (r *TopDown) drawGrid(screen *ebiten.Image, vp Viewport, unit float32) {
	cx, cy, _ := vp.Project(0, 0)
	for i := -int(config.WorldExtent); i <= int(config.WorldExtent); i++ {
		off := float32(i) * unit
		vector.StrokeLine(screen, float32(cx)+off, 0, float32(cx)+off, float32(r.height), 1, config.GridColor, false)
		vector.StrokeLine(screen, 0, float32(cy)+off, float32(r.width), float32(cy)+off, 1, config.GridColor, false)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 3, config.OriginColor, true)
}

func (r *TopDown) drawStatus(screen *ebiten.Image) {
	f := &r.frame
	lines := []string{
		fmt.Sprintf("live %d/%d  t=%.2f", f.Live(), f.Config.MaxEntities, f.Time),
		fmt.Sprintf("shape %s  pattern %s", f.Config.ShapeKind, f.Config.SpawnPattern),
		fmt.Sprintf("roll %s  move %s", f.Config.RollEasing, f.Config.MoveEasing),
		"S P E M Space D",
	}
	vector.DrawFilledRect(screen, 8, 8, 300, float32(18*len(lines)+8), config.PanelColor, false)
	for i, line := range lines {
		text.Draw(screen, line, r.fontFace, 16, 26+18*i, textColor(i))
	}
}

func textColor(line int) color.Color {
	if line == 3 {
		return config.GridColor
	}
	return config.TextLightColor
}
