// internal/component/transform.go
package component

import "github.com/golang/geo/r3"

// Transform - поза сущности, пересчитываемая каждый тик.
type Transform struct {
	Position  r3.Vector
	RotationY float64 // удерживается на угле спавна
	RotationX float64 // ось «перекатывания»
	Progress  float64 // [0, 1]
	Completed bool    // progress >= 1 на последнем тике; выводится заново
}
