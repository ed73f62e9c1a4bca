// internal/state/animation_state.go
package state

import (
	"math"

	"go.uber.org/zap"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-cube-train/internal/app"
	"go-cube-train/internal/assets"
	"go-cube-train/internal/config"
	"go-cube-train/internal/logger"
	"go-cube-train/internal/system/rlrender"
	"go-cube-train/internal/ui"
)

var _ State = (*AnimationState)(nil)

// AnimationState - основное состояние 3D-хоста: тики аниматора,
// управление с клавиатуры и орбитальная камера.
type AnimationState struct {
	sm       *StateMachine
	animator *app.Animator
	loop     *app.Loop
	render   *rlrender.RenderSystemRL
	hud      *ui.HUD
	panel    *ui.ControlPanel
	font     rl.Font
	camera   *rl.Camera3D

	orbitAngle float64
	distance   float64
	autoRotate bool
}

func NewAnimationState(sm *StateMachine, animator *app.Animator, clock app.Clock, font rl.Font) *AnimationState {
	render := rlrender.NewRenderSystemRL(assets.NewModelManager())
	hud := ui.NewHUD(font)
	animator.Events().SubscribeAll(hud)

	return &AnimationState{
		sm:         sm,
		animator:   animator,
		loop:       app.NewLoop(clock, animator, render),
		render:     render,
		hud:        hud,
		panel:      ui.NewControlPanel(font),
		font:       font,
		orbitAngle: math.Pi / 4,
		distance:   15,
		autoRotate: true,
	}
}

func (s *AnimationState) Enter() {
	s.loop.SetPaused(false)
	s.panel.Pause.SetPaused(false)
}

// PauseClicked сообщает, нажата ли круглая кнопка паузы.
func (s *AnimationState) PauseClicked() bool {
	return s.panel.Pause.IsClicked(rl.GetMousePosition())
}

func (s *AnimationState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyF9) || rl.IsKeyPressed(rl.KeyEscape) || s.PauseClicked() {
		s.loop.SetPaused(true)
		s.panel.Pause.SetPaused(true)
		s.sm.SetState(NewPauseState(s.sm, s, s.font))
		return
	}
	s.handleKeys()
	s.updateCamera()

	if err := s.loop.Tick(); err != nil {
		logger.Error("tick failed", zap.Error(err))
		s.hud.SetError(err.Error())
	}
}

// keyCommands: раскладка панели управления для raylib.
var keyCommands = map[int32]app.Command{
	rl.KeyS:     app.CmdNextShape,
	rl.KeyP:     app.CmdNextPattern,
	rl.KeyE:     app.CmdNextRollEasing,
	rl.KeyM:     app.CmdNextMoveEasing,
	rl.KeySpace: app.CmdToggleSpawning,
	rl.KeyD:     app.CmdToggleDirection,
	rl.KeyC:     app.CmdClear,
}

// handleKeys: каждая клавиша панели вызывает команду аниматора.
func (s *AnimationState) handleKeys() {
	for key, cmd := range keyCommands {
		if rl.IsKeyPressed(key) {
			s.apply(cmd)
		}
	}
	if cmd, ok := s.panel.Clicked(rl.GetMousePosition()); ok {
		s.apply(cmd)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.autoRotate = !s.autoRotate
	}
	if rl.IsKeyPressed(rl.KeyG) {
		s.render.ToggleGrid()
	}
}

func (s *AnimationState) apply(cmd app.Command) {
	if err := s.animator.Apply(cmd); err != nil {
		s.hud.SetError(err.Error())
		return
	}
	s.hud.SetError("")
}

// updateCamera: стрелки влево/вправо вращают камеру вокруг центра,
// колесо приближает.
func (s *AnimationState) updateCamera() {
	if s.camera == nil {
		return
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		s.orbitAngle -= config.CameraOrbitSpeed
	}
	if rl.IsKeyDown(rl.KeyRight) {
		s.orbitAngle += config.CameraOrbitSpeed
	}
	if s.autoRotate {
		s.orbitAngle += config.CameraAutoRotation
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.distance -= float64(wheel)
		s.distance = math.Max(config.CameraMinDistance, math.Min(config.CameraMaxDistance, s.distance))
	}

	height := s.distance / 3
	s.camera.Position = rl.NewVector3(
		float32(math.Cos(s.orbitAngle)*s.distance),
		float32(height),
		float32(math.Sin(s.orbitAngle)*s.distance),
	)
	s.camera.Target = rl.Vector3Zero()
}

func (s *AnimationState) Draw() {
	s.render.Draw()
}

func (s *AnimationState) DrawUI() {
	s.hud.Draw(s.render.Frame())
	s.panel.Draw(rl.GetMousePosition())
}

func (s *AnimationState) Exit() {}

// Cleanup освобождает все формы и выгружает модели.
func (s *AnimationState) Cleanup() {
	s.animator.Close()
	s.render.Cleanup()
}

func (s *AnimationState) SetCamera(camera *rl.Camera3D) {
	s.camera = camera
}
