package gradpick

// EventKind identifies a picker notification.
type EventKind int

const (
	// EventAdded fires after a stop has been appended.
	EventAdded EventKind = iota
	// EventRemoved fires after a stop has been removed.
	EventRemoved
	// EventMoved fires after one or more stop positions changed.
	EventMoved
	// EventColorChanged fires after one or more stop colors changed.
	EventColorChanged
	// EventSelected fires when a drag starts on a stop.
	EventSelected
	// EventLimitExceeded fires when an add is rejected by the maximum count.
	EventLimitExceeded
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventMoved:
		return "moved"
	case EventColorChanged:
		return "color-changed"
	case EventSelected:
		return "selected"
	case EventLimitExceeded:
		return "limit-exceeded"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after the mutation it describes has
// completed. Stop is nil for bulk operations.
type Event struct {
	Kind EventKind
	Stop *Stop
}

// Listener receives picker events.
type Listener func(Event)

// dispatcher fans events out to registered listeners in registration order.
type dispatcher struct {
	next      int
	listeners []registration
}

type registration struct {
	id int
	fn Listener
}

// subscribe registers fn and returns a function that removes it.
func (d *dispatcher) subscribe(fn Listener) func() {
	d.next++
	id := d.next
	d.listeners = append(d.listeners, registration{id: id, fn: fn})
	return func() {
		for i, r := range d.listeners {
			if r.id == id {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

func (d *dispatcher) emit(e Event) {
	// Copy so listeners may unsubscribe while being notified.
	ls := make([]registration, len(d.listeners))
	copy(ls, d.listeners)
	for _, r := range ls {
		r.fn(e)
	}
}
