// internal/event/event.go
package event

import (
	"hex-colony/internal/component"
	"hex-colony/pkg/hexmap"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// EventType: тип события
type EventType string

// Event is one observable change produced during a tick.
type Event struct {
	Type     EventType
	Tick     uint64
	Seq      int // position within the tick, starting at 0
	Agent    component.AgentID
	Obstacle component.BodyID // set for Blocked and blocked cancellations
	Point    orb.Point        // world point of contact or arrival
	Cell     hexmap.Hex
	Command  uuid.UUID
	Reason   string
}

// Listener: интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher: диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher: создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe: подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe: отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch: отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}
