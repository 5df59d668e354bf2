// internal/system/music.go
package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/event"
	"math"
)

// MusicSystem выбирает режим музыки. Во время боя с боссом режим не меняется.
type MusicSystem struct {
	eventDispatcher *event.Dispatcher
	mode            component.MusicMode
	intensity       float64
	bossFight       bool
}

func NewMusicSystem(eventDispatcher *event.Dispatcher) *MusicSystem {
	ms := &MusicSystem{eventDispatcher: eventDispatcher, mode: component.MusicNormal}
	eventDispatcher.Subscribe(event.BossSpawned, ms)
	eventDispatcher.Subscribe(event.BossDefeated, ms)
	return ms
}

func (s *MusicSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.BossSpawned:
		s.bossFight = true
		s.setMode(component.MusicBoss)
	case event.BossDefeated:
		s.bossFight = false
		s.setMode(component.MusicNormal)
	}
}

// Update пересчитывает режим по числу жизней и пуль на поле.
func (s *MusicSystem) Update(lives, bulletCount int) {
	if s.bossFight {
		return
	}
	s.intensity = math.Min(1, float64(bulletCount)/config.MusicBullets)

	if lives <= config.DangerLives || bulletCount > config.DangerBullets {
		s.setMode(component.MusicDanger)
	} else {
		s.setMode(component.MusicNormal)
	}
}

func (s *MusicSystem) setMode(mode component.MusicMode) {
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.eventDispatcher.Emit(event.MusicModeChanged, mode)
}

func (s *MusicSystem) Mode() component.MusicMode { return s.mode }
func (s *MusicSystem) Intensity() float64        { return s.intensity }

// Reset возвращает обычный режим без события.
func (s *MusicSystem) Reset() {
	s.mode = component.MusicNormal
	s.intensity = 0
	s.bossFight = false
}
