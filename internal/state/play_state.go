// internal/state/play_state.go
package state

import (
	"go-polarity-shooter/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState - идёт партия.
type PlayState struct {
	sm      *StateMachine
	session *Session
}

func NewPlayState(sm *StateMachine, session *Session) *PlayState {
	return &PlayState{sm: sm, session: session}
}

func (s *PlayState) Enter() {
	s.session.HUD.PauseButton.SetPaused(false)
}

func (s *PlayState) Update(deltaTime float64) {
	if pausePressed() || s.pauseClicked() {
		s.sm.SetState(NewPauseState(s.sm, s.session, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.session.HUD.Panel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.session.Input.ToggleMouseAim()
	}

	s.session.step(deltaTime)

	if s.session.Game.Status() == component.GameOver {
		s.sm.SetState(NewGameOverState(s.sm, s.session))
	}
}

func (s *PlayState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return s.session.HUD.PauseButton.IsClicked(x, y)
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.session.drawField(screen)
}

func (s *PlayState) Exit() {}

// pausePressed - клавиши паузы общие для игры и паузы.
func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
}
