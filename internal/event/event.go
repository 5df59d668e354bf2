// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data any // полезная нагрузка, тип зависит от Type (см. types.go)
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription - квитанция подписки, нужна для отписки.
// Функции нельзя сравнивать, поэтому отписка идёт по номеру, а не по слушателю.
type Subscription struct {
	eventType EventType
	all       bool
	id        uint64
}

type subscriber struct {
	id       uint64
	listener Listener
}

// Dispatcher - диспетчер событий. Однопоточный: вызывается только из игрового цикла.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	all       []subscriber
	nextID    uint64
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return Subscription{eventType: eventType, id: d.nextID}
}

// SubscribeAll - подписка на все события (логирование, метрики).
func (d *Dispatcher) SubscribeAll(listener Listener) Subscription {
	d.nextID++
	d.all = append(d.all, subscriber{id: d.nextID, listener: listener})
	return Subscription{all: true, id: d.nextID}
}

// Unsubscribe - отписка. Повторный вызов ничего не делает.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	if sub.all {
		d.all = without(d.all, sub.id)
		return
	}
	if subs, exists := d.listeners[sub.eventType]; exists {
		d.listeners[sub.eventType] = without(subs, sub.id)
	}
}

func without(subs []subscriber, id uint64) []subscriber {
	for i, s := range subs {
		if s.id == id {
			// новый срез: Dispatch может в этот момент идти по старому
			out := make([]subscriber, 0, len(subs)-1)
			out = append(out, subs[:i]...)
			return append(out, subs[i+1:]...)
		}
	}
	return subs
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
	for _, s := range d.all {
		s.listener.OnEvent(event)
	}
}

// Emit - сокращение для Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Emit(t EventType, data any) {
	if d == nil {
		return
	}
	d.Dispatch(Event{Type: t, Data: data})
}
