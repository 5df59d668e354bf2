// internal/system/chain.go
package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/event"
)

// ChainSystem считает цепочки: три уничтожения подряд одной полярности
// дают +1 к цепочке. Смена полярности ломает цепочку.
type ChainSystem struct {
	eventDispatcher *event.Dispatcher
	queue           []component.Polarity
	count           int
	maxChain        int
	polarity        component.Polarity
	hasPolarity     bool
}

func NewChainSystem(eventDispatcher *event.Dispatcher) *ChainSystem {
	return &ChainSystem{
		eventDispatcher: eventDispatcher,
		queue:           make([]component.Polarity, 0, config.ChainLength),
	}
}

// OnEnemyDestroyed регистрирует уничтожение врага заданной полярности.
func (s *ChainSystem) OnEnemyDestroyed(p component.Polarity) {
	if s.hasPolarity && p != s.polarity {
		s.BreakChain()
	}

	s.queue = append(s.queue, p)
	if len(s.queue) > config.ChainLength {
		s.queue = s.queue[1:]
	}

	if len(s.queue) == config.ChainLength && s.allSame() {
		s.count++
		s.polarity = p
		s.hasPolarity = true
		if s.count > s.maxChain {
			s.maxChain = s.count
		}
		s.queue = append(s.queue[:0], p)
		s.eventDispatcher.Emit(event.ChainIncreased, event.ChainData{Count: s.count, Polarity: p})
	}
}

func (s *ChainSystem) allSame() bool {
	for _, q := range s.queue[1:] {
		if q != s.queue[0] {
			return false
		}
	}
	return true
}

// BreakChain сбрасывает цепочку. Без активной цепочки ничего не делает.
func (s *ChainSystem) BreakChain() {
	if s.count == 0 {
		return
	}
	broken := s.count
	s.count = 0
	s.queue = s.queue[:0]
	s.hasPolarity = false
	s.eventDispatcher.Emit(event.ChainBroken, event.ChainData{Count: broken, Polarity: s.polarity})
}

// Multiplier - множитель очков (count+1)^2.
func (s *ChainSystem) Multiplier() int {
	return (s.count + 1) * (s.count + 1)
}

func (s *ChainSystem) Count() int    { return s.count }
func (s *ChainSystem) MaxChain() int { return s.maxChain }

// Queue возвращает копию очереди последних уничтожений.
func (s *ChainSystem) Queue() []component.Polarity {
	return append([]component.Polarity(nil), s.queue...)
}

// Polarity возвращает полярность активной цепочки, если она есть.
func (s *ChainSystem) Polarity() (component.Polarity, bool) {
	return s.polarity, s.hasPolarity
}

// Reset полностью очищает систему, включая рекорд.
func (s *ChainSystem) Reset() {
	s.count = 0
	s.maxChain = 0
	s.queue = s.queue[:0]
	s.hasPolarity = false
}
