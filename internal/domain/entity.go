package domain

// EventRecorder buffers the events an entity produces. It is embedded in
// every entity; the buffer is per-instance and not safe for concurrent use,
// which is fine because entities are request-scoped.
type EventRecorder struct {
	events []Event
}

// Record appends an event to the buffer.
func (r *EventRecorder) Record(event Event) {
	r.events = append(r.events, event)
}

// PullEvents returns the buffered events in emission order and clears the
// buffer. It is intended to be called once per unit-of-work boundary;
// calling it again before the next mutation returns nil.
func (r *EventRecorder) PullEvents() []Event {
	events := r.events
	r.events = nil
	return events
}
