// internal/view/frame.go
package view

import (
	"github.com/golang/geo/r3"
	"github.com/google/uuid"

	"go-cube-train/internal/config"
	"go-cube-train/internal/shape"
	"go-cube-train/internal/types"
)

// EntityView is the read-only pose of one entity for a renderer.
type EntityView struct {
	ID        types.EntityID
	Position  r3.Vector
	RotationY float64
	RotationX float64
	Progress  float64
	Completed bool
	Kind      shape.Kind
	Size      float64
	Faces     []shape.Face
}

// Frame is what a renderer receives after each tick. Entities are in
// queue order, oldest first.
type Frame struct {
	Time     float64
	Epoch    uuid.UUID
	Angle    float64
	Warnings int
	Paused   bool
	Config   config.Config
	Entities []EntityView
}

// Live is the number of entities in the frame.
func (f *Frame) Live() int { return len(f.Entities) }
