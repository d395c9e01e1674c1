package slides

// EventType identifies a widget lifecycle notification.
type EventType uint8

const (
	EventInit     EventType = iota // the widget is attached and laid out
	EventStarted                   // playback started
	EventStopped                   // playback stopped
	EventUpdated                   // positions were recomputed by Refresh
	EventAnimated                  // a transition finished (not the first)
)

var eventNames = [...]string{
	EventInit:     "init",
	EventStarted:  "started",
	EventStopped:  "stopped",
	EventUpdated:  "updated",
	EventAnimated: "animated",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is a lifecycle notification. It carries the emitting widget's ID and
// nothing else.
type Event struct {
	Type     EventType
	WidgetID uint32
}

// EventSink receives lifecycle notifications.
type EventSink interface {
	Emit(Event)
}

// EventSinkFunc adapts a function to an EventSink.
type EventSinkFunc func(Event)

// Emit calls f(e).
func (f EventSinkFunc) Emit(e Event) { f(e) }

type eventHandler struct {
	id    uint32
	event EventType
	fn    func(Event)
}

// Dispatcher is the widget's EventSink. Handlers are registered per event
// type and removed through the returned Subscription.
type Dispatcher struct {
	handlers []eventHandler
	forward  EventSink
	nextID   uint32
}

// On registers fn for events of type t.
func (d *Dispatcher) On(t EventType, fn func(Event)) Subscription {
	d.nextID++
	id := d.nextID
	d.handlers = append(d.handlers, eventHandler{id: id, event: t, fn: fn})
	return Subscription{id: id, d: d}
}

// Forward sends every emitted event to sink as well, after the registered
// handlers. A nil sink stops forwarding.
func (d *Dispatcher) Forward(sink EventSink) {
	d.forward = sink
}

// Emit calls the handlers registered for e.Type in registration order, then
// the forward sink. A handler added during Emit first fires on the next event;
// one removed during Emit is skipped if it has not run yet.
func (d *Dispatcher) Emit(e Event) {
	handlers := append([]eventHandler(nil), d.handlers...)
	for _, h := range handlers {
		if h.event == e.Type && d.registered(h.id) {
			h.fn(e)
		}
	}
	if d.forward != nil {
		d.forward.Emit(e)
	}
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}

// Clear removes every handler and the forward sink.
func (d *Dispatcher) Clear() {
	for i := range d.handlers {
		d.handlers[i] = eventHandler{}
	}
	d.handlers = d.handlers[:0]
	d.forward = nil
}

func (d *Dispatcher) registered(id uint32) bool {
	for i := range d.handlers {
		if d.handlers[i].id == id {
			return true
		}
	}
	return false
}

func (d *Dispatcher) remove(id uint32) {
	for i := range d.handlers {
		if d.handlers[i].id == id {
			copy(d.handlers[i:], d.handlers[i+1:])
			d.handlers[len(d.handlers)-1] = eventHandler{}
			d.handlers = d.handlers[:len(d.handlers)-1]
			return
		}
	}
}

// Subscription allows removing a registered handler.
type Subscription struct {
	id uint32
	d  *Dispatcher
}

// Remove unregisters the handler so it no longer fires.
func (s Subscription) Remove() {
	if s.d == nil {
		return
	}
	s.d.remove(s.id)
}
