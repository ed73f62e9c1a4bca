// pkg/render/project.go
package render

import "go-cube-train/internal/config"

// Viewport maps the world XZ plane onto a width×height grid centered on
// the origin. Aspect compensates non-square cells (terminals are about
// twice as tall as wide).
type Viewport struct {
	Width, Height int
	Aspect        float64
}

// Project returns the cell for a world point and whether it is on screen.
func (v Viewport) Project(x, z float64) (int, int, bool) {
	scale := float64(v.Height) / config.WorldExtent
	col := float64(v.Width)/2 + x*scale*v.Aspect
	row := float64(v.Height)/2 + z*scale
	cx, cy := int(col), int(row)
	if col < 0 || row < 0 || cx >= v.Width || cy >= v.Height {
		return cx, cy, false
	}
	return cx, cy, true
}
