// Package audio озвучивает игровые события синтезированными тонами.
package audio

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/event"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

var (
	toneShot      = Tone{Freq: 880, EndFreq: 660, Duration: 40 * time.Millisecond, Wave: WaveSquare, Gain: 0.05}
	toneAbsorb    = Tone{Freq: 520, EndFreq: 1040, Duration: 60 * time.Millisecond, Wave: WaveSine, Gain: 0.12}
	toneHit       = Tone{Freq: 220, EndFreq: 60, Duration: 350 * time.Millisecond, Wave: WaveSaw, Gain: 0.3}
	toneSwitch    = Tone{Freq: 330, EndFreq: 660, Duration: 80 * time.Millisecond, Wave: WaveSine, Gain: 0.15}
	toneWarning   = Tone{Freq: 140, Duration: 250 * time.Millisecond, Wave: WaveSquare, Gain: 0.15}
	tonePowerUp   = Tone{Freq: 660, EndFreq: 1320, Duration: 200 * time.Millisecond, Wave: WaveSine, Gain: 0.2}
	toneSpecial   = Tone{Freq: 1200, EndFreq: 100, Duration: 600 * time.Millisecond, Wave: WaveSaw, Gain: 0.25}
	toneChain     = Tone{Freq: 990, Duration: 90 * time.Millisecond, Wave: WaveSine, Gain: 0.15}
	toneExplosion = map[component.EnemySize]Tone{
		component.SizeSmall:  {Duration: 150 * time.Millisecond, Wave: WaveNoise, Gain: 0.15},
		component.SizeMedium: {Duration: 250 * time.Millisecond, Wave: WaveNoise, Gain: 0.2},
		component.SizeLarge:  {Duration: 500 * time.Millisecond, Wave: WaveNoise, Gain: 0.3},
	}

	drones = map[component.MusicMode]struct {
		base  float64
		pulse time.Duration
	}{
		component.MusicNormal: {base: 110, pulse: 600 * time.Millisecond},
		component.MusicDanger: {base: 147, pulse: 300 * time.Millisecond},
		component.MusicBoss:   {base: 82, pulse: 400 * time.Millisecond},
	}
)

// SoundManager слушает события симуляции и проигрывает звуки.
// Пока динамик не инициализирован, все методы ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicMode   component.MusicMode
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize открывает устройство вывода.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup глушит все звуки.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = true
		speaker.Unlock()
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.music = nil
	sm.initialized = false
}

// Attach подписывает менеджер на нужные события.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.Shot, event.Explosion, event.BulletAbsorbed, event.PlayerHit,
		event.PolaritySwitched, event.BossWarning, event.PowerUpCollected,
		event.SpecialWeapon, event.ChainIncreased, event.MusicModeChanged, event.GameStarted,
	} {
		d.Subscribe(t, sm)
	}
}

func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.MusicModeChanged:
		if mode, ok := e.Data.(component.MusicMode); ok {
			sm.SetMusic(mode)
		}
		return
	case event.GameStarted:
		sm.SetMusic(component.MusicNormal)
		return
	}
	if tone, ok := ToneFor(e); ok {
		sm.Play(tone)
	}
}

// ToneFor выбирает звук для события.
func ToneFor(e event.Event) (Tone, bool) {
	switch e.Type {
	case event.Shot:
		data, ok := e.Data.(event.ShotData)
		// вражеских выстрелов слишком много, озвучиваем только свои
		if !ok || data.Owner != component.OwnerPlayer {
			return Tone{}, false
		}
		return toneShot, true
	case event.Explosion:
		size, _ := e.Data.(component.EnemySize)
		t, ok := toneExplosion[size]
		if !ok {
			t = toneExplosion[component.SizeMedium]
		}
		return t, true
	case event.BulletAbsorbed:
		return toneAbsorb, true
	case event.PlayerHit:
		return toneHit, true
	case event.PolaritySwitched:
		t := toneSwitch
		if p, ok := e.Data.(component.Polarity); ok && p == component.Black {
			t.Freq, t.EndFreq = t.EndFreq, t.Freq
		}
		return t, true
	case event.BossWarning:
		return toneWarning, true
	case event.PowerUpCollected:
		return tonePowerUp, true
	case event.SpecialWeapon:
		return toneSpecial, true
	case event.ChainIncreased:
		t := toneChain
		if data, ok := e.Data.(event.ChainData); ok {
			t.Freq += float64(data.Count) * 40
		}
		return t, true
	}
	return Tone{}, false
}

// Play добавляет короткий тон в микшер.
func (sm *SoundManager) Play(tone Tone) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(NewOscillator(tone, sampleRate))
	speaker.Unlock()
}

// SetMusic переключает фоновый слой.
func (sm *SoundManager) SetMusic(mode component.MusicMode) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || (mode == sm.musicMode && sm.music != nil) {
		return
	}
	d, ok := drones[mode]
	if !ok {
		return
	}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.music = &beep.Ctrl{Streamer: NewDroneGenerator(sampleRate, d.base, d.pulse)}
	sm.mixer.Add(sm.music)
	speaker.Unlock()
	sm.musicMode = mode
}

// MusicMode - текущий фоновый слой.
func (sm *SoundManager) MusicMode() component.MusicMode {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicMode
}
