package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/event"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMusic_ModeFollowsDanger(t *testing.T) {
	d := event.NewDispatcher()
	var changes []component.MusicMode
	d.Subscribe(event.MusicModeChanged, event.ListenerFunc(func(e event.Event) {
		changes = append(changes, e.Data.(component.MusicMode))
	}))
	m := NewMusicSystem(d)

	m.Update(3, 10)
	assert.Equal(t, component.MusicNormal, m.Mode())
	assert.Empty(t, changes, "unchanged mode emits nothing")

	m.Update(1, 10)
	assert.Equal(t, component.MusicDanger, m.Mode())

	m.Update(3, 81)
	assert.Equal(t, component.MusicDanger, m.Mode())
	assert.InDelta(t, 0.81, m.Intensity(), 1e-9)

	m.Update(3, 0)
	assert.Equal(t, []component.MusicMode{component.MusicDanger, component.MusicNormal}, changes)
}

func TestMusic_BossFightLocksMode(t *testing.T) {
	d := event.NewDispatcher()
	m := NewMusicSystem(d)

	d.Emit(event.BossSpawned, event.BossData{Phase: 1})
	assert.Equal(t, component.MusicBoss, m.Mode())

	m.Update(1, 200)
	assert.Equal(t, component.MusicBoss, m.Mode())

	d.Emit(event.BossDefeated, nil)
	assert.Equal(t, component.MusicNormal, m.Mode())
}
