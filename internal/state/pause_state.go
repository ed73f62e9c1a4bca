// internal/state/pause_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-cube-train/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// pauseClicker - состояние с кнопкой паузы на экране.
type pauseClicker interface {
	PauseClicked() bool
}

// PauseState замораживает симуляцию: время не идёт, кадр предыдущего
// состояния продолжает рисоваться.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	font          rl.Font
}

func NewPauseState(sm *StateMachine, prevState State, font rl.Font) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          font,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	clicked := false
	if pc, ok := s.previousState.(pauseClicker); ok {
		clicked = pc.PauseClicked()
	}
	if clicked || rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw() {
	if s.previousState != nil {
		s.previousState.Draw()
	}
}

// DrawUI рисует UI для состояния паузы
func (s *PauseState) DrawUI() {
	if s.previousState != nil {
		s.previousState.DrawUI()
	}

	rl.DrawRectangle(0, 0, int32(config.ScreenWidth), int32(config.ScreenHeight), rl.NewColor(0, 0, 0, 128))

	pauseText := "PAUSED"
	fontSize := 40
	textWidth := rl.MeasureTextEx(s.font, pauseText, float32(fontSize), 1)
	rl.DrawTextEx(s.font, pauseText, rl.NewVector2(float32(config.ScreenWidth-int(textWidth.X))/2, float32(config.ScreenHeight)/2-20), float32(fontSize), 1, rl.White)
}

func (s *PauseState) Exit() {}

func (s *PauseState) Cleanup() {
	// Пауза не владеет ресурсами; формы и модели у предыдущего состояния.
	if s.previousState != nil {
		s.previousState.Cleanup()
	}
}

func (s *PauseState) SetCamera(camera *rl.Camera3D) {
	if s.previousState != nil {
		s.previousState.SetCamera(camera)
	}
}
