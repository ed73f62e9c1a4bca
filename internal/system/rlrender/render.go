// internal/system/rlrender/render.go
package rlrender

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-cube-train/internal/assets"
	"go-cube-train/internal/config"
	"go-cube-train/internal/shape"
	"go-cube-train/internal/view"
)

// RenderSystemRL рисует последний кадр аниматора в 3D.
// Render вызывается циклом после тика, Draw - внутри BeginMode3D.
type RenderSystemRL struct {
	modelManager *assets.ModelManager
	frame        view.Frame
	showGrid     bool
}

// NewRenderSystemRL создает систему рендеринга поверх менеджера моделей.
func NewRenderSystemRL(modelManager *assets.ModelManager) *RenderSystemRL {
	return &RenderSystemRL{modelManager: modelManager, showGrid: true}
}

// Render запоминает кадр до следующего Draw.
func (s *RenderSystemRL) Render(frame view.Frame) {
	s.frame = frame
}

// Frame возвращает последний полученный кадр (для HUD).
func (s *RenderSystemRL) Frame() *view.Frame {
	return &s.frame
}

func (s *RenderSystemRL) ToggleGrid() {
	s.showGrid = !s.showGrid
}

func (s *RenderSystemRL) Draw() {
	if s.showGrid {
		rl.DrawGrid(config.WorldExtent, 1.0)
	}
	rl.DrawSphere(rl.Vector3Zero(), 0.08, toRL(config.OriginColor))

	for i := range s.frame.Entities {
		s.drawEntity(&s.frame.Entities[i])
	}
}

func (s *RenderSystemRL) drawEntity(e *view.EntityView) {
	rl.PushMatrix()
	// Родитель: позиция и поворот на угол спавна, затем «перекатывание» по X.
	rl.Translatef(float32(e.Position.X), float32(e.Position.Y), float32(e.Position.Z))
	rl.Rotatef(float32(e.RotationY)*rl.Rad2deg, 0, 1, 0)
	rl.Rotatef(float32(e.RotationX)*rl.Rad2deg, 1, 0, 0)

	for i := range e.Faces {
		s.drawFace(&e.Faces[i])
	}
	rl.PopMatrix()
}

func (s *RenderSystemRL) drawFace(f *shape.Face) {
	if f.Geometry == nil || f.Material == nil || f.Geometry.Released() {
		return
	}
	c := toRL(f.Material.Color)

	rl.PushMatrix()
	rl.Translatef(float32(f.Offset.X), float32(f.Offset.Y), float32(f.Offset.Z))
	rl.Rotatef(float32(f.Rotation.X)*rl.Rad2deg, 1, 0, 0)
	rl.Rotatef(float32(f.Rotation.Y)*rl.Rad2deg, 0, 1, 0)
	rl.Rotatef(float32(f.Rotation.Z)*rl.Rad2deg, 0, 0, 1)

	if model, ok := s.modelManager.GetModel(f.Geometry); ok {
		rl.DrawModel(model, rl.Vector3Zero(), 1.0, c)
	} else if f.Geometry.Kind == shape.GeometryCapsule {
		half := float32(f.Geometry.Length / 2)
		rl.DrawCapsule(
			rl.NewVector3(0, -half, 0),
			rl.NewVector3(0, half, 0),
			float32(f.Geometry.Radius),
			int32(f.Geometry.Segments[1]),
			int32(f.Geometry.Segments[0]),
			c,
		)
	}
	rl.PopMatrix()
}

func (s *RenderSystemRL) Cleanup() {
	s.frame = view.Frame{}
	s.modelManager.Cleanup()
}

// toRL переводит color.RGBA в rl.Color.
func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
