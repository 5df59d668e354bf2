package tui

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/interfaces"

	"github.com/gdamore/tcell/v2"
)

// Controller переводит клавиши в команды игре: старт, пауза, рестарт, выход.
// Остальные клавиши уходят в Input.
type Controller struct {
	game   interfaces.Game
	input  *Input
	Paused bool
	quit   bool
}

func NewController(game interfaces.Game, in *Input) *Controller {
	return &Controller{game: game, input: in}
}

func (c *Controller) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quit = true
		return
	case tcell.KeyEnter:
		if c.game.Status() == component.StartScreen {
			c.game.StartGame()
		}
		return
	case tcell.KeyRune:
	default:
		c.input.HandleKey(ev)
		return
	}

	switch ev.Rune() {
	case 'q', 'Q':
		c.quit = true
	case 'p', 'P':
		if c.game.Status() == component.Playing {
			c.Paused = !c.Paused
		}
	case 'r', 'R':
		if c.Paused || c.game.Status() == component.GameOver {
			c.Paused = false
			c.game.Restart()
		}
	case ' ':
		if c.game.Status() == component.StartScreen {
			c.game.StartGame()
			return
		}
		c.input.HandleKey(ev)
	default:
		c.input.HandleKey(ev)
	}
}

// Tick продвигает игру, если она не на паузе.
func (c *Controller) Tick(deltaTime float64) {
	if c.Paused {
		return
	}
	c.game.Update(deltaTime)
}

func (c *Controller) Quit() bool { return c.quit }
