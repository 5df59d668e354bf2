package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher_SubscribeAndDispatch(t *testing.T) {
	d := NewDispatcher()
	hits := &recorder{}
	d.Subscribe(PlayerHit, hits)

	d.Emit(PlayerHit, PlayerData{Lives: 2})
	d.Emit(Shot, nil)

	assert.Len(t, hits.got, 1)
	assert.Equal(t, 2, hits.got[0].Data.(PlayerData).Lives)
}

func TestDispatcher_SubscribeAllSeesEverything(t *testing.T) {
	d := NewDispatcher()
	all := &recorder{}
	d.SubscribeAll(all)

	d.Emit(Shot, nil)
	d.Emit(GameOver, GameOverData{Score: 10})

	assert.Len(t, all.got, 2)
	assert.Equal(t, GameOver, all.got[1].Type)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	other := &recorder{}
	sub := d.Subscribe(Explosion, r)
	d.Subscribe(Explosion, other)
	d.Unsubscribe(sub)
	d.Unsubscribe(sub)

	d.Emit(Explosion, nil)
	assert.Empty(t, r.got)
	assert.Len(t, other.got, 1)
}

func TestDispatcher_UnsubscribeFuncAndAll(t *testing.T) {
	d := NewDispatcher()
	count := 0
	fn := d.Subscribe(Shot, ListenerFunc(func(Event) { count++ }))
	all := &recorder{}
	allSub := d.SubscribeAll(all)

	d.Emit(Shot, nil)
	d.Unsubscribe(fn)
	d.Unsubscribe(allSub)
	d.Emit(Shot, nil)

	assert.Equal(t, 1, count)
	assert.Len(t, all.got, 1)
}

func TestDispatcher_UnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	var sub Subscription
	sub = d.Subscribe(Shot, ListenerFunc(func(Event) {
		calls++
		d.Unsubscribe(sub)
	}))
	second := &recorder{}
	d.Subscribe(Shot, second)

	d.Emit(Shot, nil)
	d.Emit(Shot, nil)
	assert.Equal(t, 1, calls)
	assert.Len(t, second.got, 2)
}

func TestDispatcher_ListenerFunc(t *testing.T) {
	d := NewDispatcher()
	count := 0
	d.Subscribe(ChainIncreased, ListenerFunc(func(Event) { count++ }))

	d.Emit(ChainIncreased, ChainData{Count: 1})
	d.Emit(ChainIncreased, ChainData{Count: 2})
	assert.Equal(t, 2, count)
}

func TestDispatcher_NilEmitIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Emit(Shot, nil) })
}
