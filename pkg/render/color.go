// pkg/render/color.go
package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"go-cube-train/internal/shape"
)

// Доля смешивания с фоном у завершившей анимацию сущности.
const completedFade = 0.6

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	h, s, v := toColorful(c).Hsv()
	return fromColorful(colorful.Hsv(h, s, v*0.5), c.A)
}

// FaceColor averages the face colors of a shape in Lab space, so a cube
// reads as one tint in views that cannot show individual faces.
func FaceColor(faces []shape.Face) color.RGBA {
	var acc colorful.Color
	n := 0
	for _, f := range faces {
		if f.Material == nil {
			continue
		}
		c := toColorful(f.Material.Color)
		if n == 0 {
			acc = c
		} else {
			acc = acc.BlendLab(c, 1/float64(n+1))
		}
		n++
	}
	if n == 0 {
		return color.RGBA{200, 200, 200, 255}
	}
	return fromColorful(acc, 255)
}

// Fade blends c toward bg as progress goes from 0 to 1.
func Fade(c, bg color.RGBA, progress float64) color.RGBA {
	if progress <= 0 {
		return c
	}
	if progress > 1 {
		progress = 1
	}
	return fromColorful(toColorful(c).BlendLab(toColorful(bg), progress*completedFade), c.A)
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: a}
}
