// Package tui - терминальный фронтенд на tcell: поле символами, управление с клавиатуры.
package tui

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/input"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Терминал не присылает отпускание клавиш: клавиша считается зажатой,
// пока повторы приходят чаще keyTimeout.
const keyTimeout = 150 * time.Millisecond

type action int

const (
	actLeft action = iota
	actRight
	actUp
	actDown
	actFire
)

// Input - ввод из событий клавиатуры терминала.
type Input struct {
	now      func() time.Time
	keys     map[action]time.Time
	autoFire bool

	switchPending  bool
	specialPending bool
}

func NewInput() *Input {
	return &Input{
		now:  time.Now,
		keys: make(map[action]time.Time),
	}
}

// HandleKey разбирает нажатие. Возвращает false, если клавиша не управляет кораблём.
func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		in.press(actLeft)
	case tcell.KeyRight:
		in.press(actRight)
	case tcell.KeyUp:
		in.press(actUp)
	case tcell.KeyDown:
		in.press(actDown)
	case tcell.KeyRune:
		return in.handleRune(ev.Rune())
	default:
		return false
	}
	return true
}

func (in *Input) handleRune(r rune) bool {
	switch r {
	case 'a', 'A':
		in.press(actLeft)
	case 'd', 'D':
		in.press(actRight)
	case 'w', 'W':
		in.press(actUp)
	case 's', 'S':
		in.press(actDown)
	case 'z', 'Z':
		in.press(actFire)
	case 'f', 'F':
		in.autoFire = !in.autoFire
	case 'x', 'X':
		in.switchPending = true
	case 'c', 'C', ' ':
		in.specialPending = true
	default:
		return false
	}
	return true
}

func (in *Input) press(a action) {
	in.keys[a] = in.now()
}

func (in *Input) held(a action) bool {
	t, ok := in.keys[a]
	return ok && in.now().Sub(t) < keyTimeout
}

// AutoFire - включена ли постоянная стрельба.
func (in *Input) AutoFire() bool { return in.autoFire }

func (in *Input) MovementVector() component.Vec2 {
	return input.Axis(in.held(actLeft), in.held(actRight), in.held(actUp), in.held(actDown))
}

func (in *Input) IsFireHeld() bool {
	return in.autoFire || in.held(actFire)
}

func (in *Input) IsPolaritySwitchPressed() bool {
	pressed := in.switchPending
	in.switchPending = false
	return pressed
}

func (in *Input) IsSpecialPressed() bool {
	pressed := in.specialPending
	in.specialPending = false
	return pressed
}
