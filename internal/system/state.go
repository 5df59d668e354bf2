// internal/system/state.go
package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/event"
	"log/slog"
)

// StateSystem хранит статус игры и проверяет допустимость переходов.
type StateSystem struct {
	status          component.GameStatus
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{status: component.StartScreen, eventDispatcher: eventDispatcher}
}

func (s *StateSystem) Current() component.GameStatus {
	return s.status
}

// SwitchToPlaying переводит игру в PLAYING. Повторный вызов ничего не делает.
func (s *StateSystem) SwitchToPlaying() bool {
	if s.status == component.Playing {
		return false
	}
	from := s.status
	s.status = component.Playing
	slog.Debug("game status changed", "from", from.String(), "to", s.status.String())
	s.eventDispatcher.Emit(event.GameStarted, nil)
	return true
}

// SwitchToGameOver срабатывает только из PLAYING, так что конец игры
// фиксируется ровно один раз.
func (s *StateSystem) SwitchToGameOver() bool {
	if s.status != component.Playing {
		return false
	}
	s.status = component.GameOver
	slog.Debug("game status changed", "from", component.Playing.String(), "to", s.status.String())
	return true
}
