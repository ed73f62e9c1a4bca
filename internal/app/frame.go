// internal/app/frame.go
package app

import (
	"go-cube-train/internal/shape"
	"go-cube-train/internal/view"
)

type (
	Frame      = view.Frame
	EntityView = view.EntityView
)

// Snapshot copies the current state into a Frame.
func (a *Animator) Snapshot() Frame {
	f := Frame{
		Time:     a.now,
		Epoch:    a.lifecycle.Epoch(),
		Angle:    a.lifecycle.Angle(),
		Warnings: a.patterns.Warnings(),
		Config:   *a.cfg,
		Entities: make([]EntityView, 0, a.ecs.Len()),
	}
	for _, id := range a.ecs.Order {
		tr, ok := a.ecs.Transforms[id]
		if !ok {
			continue
		}
		v := EntityView{
			ID:        id,
			Position:  tr.Position,
			RotationY: tr.RotationY,
			RotationX: tr.RotationX,
			Progress:  tr.Progress,
			Completed: tr.Completed,
		}
		if r, ok := a.ecs.Renderables[id]; ok && r.Shape != nil {
			v.Kind = r.Shape.Kind
			v.Size = r.Shape.Size
			v.Faces = append([]shape.Face(nil), r.Shape.Faces...)
		}
		f.Entities = append(f.Entities, v)
	}
	return f
}
