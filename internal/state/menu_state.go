// internal/state/menu_state.go
package state

import (
	"fmt"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/storage"
	"go-polarity-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const menuScoreRows = 5

// MenuState - стартовый экран с таблицей рекордов
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.session.start()
		m.sm.SetState(NewPlayState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, []string{"POLARITY", "", "SPACE - start"}, config.ScreenHeight/3)
	ui.DrawCentered(screen, scoreLines(m.session.Game.HighScores(), menuScoreRows), config.ScreenHeight/2)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

// scoreLines форматирует верх таблицы рекордов.
func scoreLines(scores []storage.HighScore, rows int) []string {
	if len(scores) == 0 {
		return []string{"NO RECORDS YET"}
	}
	lines := []string{"HIGH SCORES"}
	for i, s := range scores {
		if i >= rows {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %8d  chain %d", i+1, s.Score, s.MaxChain))
	}
	return lines
}
