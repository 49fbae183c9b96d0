// internal/event/journal.go
package event

// Journal collects the events of the tick in progress, in emission order,
// and forwards each one to the dispatcher.
type Journal struct {
	dispatcher *Dispatcher
	tick       uint64
	events     []Event
}

func NewJournal(d *Dispatcher) *Journal {
	if d == nil {
		d = NewDispatcher()
	}
	return &Journal{dispatcher: d}
}

// Begin starts a new tick and drops the previous tick's events.
func (j *Journal) Begin(tick uint64) {
	j.tick = tick
	j.events = j.events[:0]
}

// Emit stamps e with the current tick and sequence number.
func (j *Journal) Emit(e Event) {
	e.Tick = j.tick
	e.Seq = len(j.events)
	j.events = append(j.events, e)
	j.dispatcher.Dispatch(e)
}

// Events returns a copy of the current tick's events.
func (j *Journal) Events() []Event {
	out := make([]Event, len(j.events))
	copy(out, j.events)
	return out
}

// Tick returns the tick being recorded.
func (j *Journal) Tick() uint64 {
	return j.tick
}

// Dispatcher returns the dispatcher events are forwarded to.
func (j *Journal) Dispatcher() *Dispatcher {
	return j.dispatcher
}
