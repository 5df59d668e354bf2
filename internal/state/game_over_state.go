// internal/state/game_over_state.go
package state

import (
	"fmt"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/ui"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gameOverScoreRows = 10

// GameOverState - итог партии и таблица рекордов.
type GameOverState struct {
	sm      *StateMachine
	session *Session
}

func NewGameOverState(sm *StateMachine, session *Session) *GameOverState {
	return &GameOverState{sm: sm, session: session}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.session.HUD.Update(s.session.Game.Stats())
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.session.restart()
		s.sm.SetState(NewPlayState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.session.drawField(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 170}, false)

	stats := s.session.Game.Stats()
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("score %d", stats.Score),
		fmt.Sprintf("max chain %d", stats.MaxChain),
		fmt.Sprintf("wave %d", stats.Wave),
		"",
	}
	lines = append(lines, scoreLines(s.session.Game.HighScores(), gameOverScoreRows)...)
	lines = append(lines, "", "R - restart")
	ui.DrawCentered(screen, lines, config.ScreenHeight/4)
}

func (s *GameOverState) Exit() {}
