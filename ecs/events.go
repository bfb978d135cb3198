package ecs

// ContactEvent records that the shapes of two entities started touching
// during a physics step. Either entity may be the avatar.
type ContactEvent struct {
	A Entity
	B Entity
}

// EventQueue is a simple FIFO queue of contact events.
type EventQueue struct {
	items []ContactEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt ContactEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []ContactEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
