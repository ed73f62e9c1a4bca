// internal/component/spawn.go
package component

import "go-cube-train/internal/spawn"

// Spawn - неизменяемые данные появления сущности.
type Spawn struct {
	Time     float64     // симулированное время создания
	Angle    float64     // угол паттерна в момент создания, рад
	Position spawn.Point // смещение, вычисленное один раз при создании
}
