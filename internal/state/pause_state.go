// internal/state/pause_state.go
package state

import (
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/ui"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию поверх предыдущего состояния.
type PauseState struct {
	stateMachine  *StateMachine
	session       *Session
	previousState State
}

func NewPauseState(sm *StateMachine, session *Session, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		session:       session,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.session.HUD.PauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := pausePressed()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.session.HUD.PauseButton.IsClicked(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.session.restart()
		s.stateMachine.SetState(NewPlayState(s.stateMachine, s.session))
		return
	}
	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 140}, false)
	p := s.session.Game.Player()
	ui.DrawCentered(screen, []string{
		"PAUSED",
		"",
		"polarity: " + p.Polarity().String(),
		"P / ESC - resume",
		"R - restart",
	}, config.ScreenHeight/2-40)
}

func (s *PauseState) Exit() {}
