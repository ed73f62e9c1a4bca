// internal/component/render.go
package component

import "go-cube-train/internal/shape"

// Renderable - грани, которыми владеет сущность.
type Renderable struct {
	Shape *shape.Shape
}
