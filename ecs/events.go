package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventContact carries a ContactEvent.
	EventContact = "contact"
	// EventImpact carries the Entity of a projectile that hit ground.
	EventImpact = "impact"
)

// ContactEvent is emitted when a character starts or stops touching a
// sensor or platform.
type ContactEvent struct {
	Character Entity
	Other     Entity
	Begin     bool
	// FromAbove is set when the character's feet were at or above the top
	// of the other shape when the contact began.
	FromAbove bool
}

// EventQueue collects events for the current frame. Systems read with Items
// and the scheduler clears it at the end of the frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns this frame's events.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Contacts returns this frame's contact events in order.
func (q *EventQueue) Contacts() []ContactEvent {
	if q == nil {
		return nil
	}
	var out []ContactEvent
	for _, evt := range q.items {
		if c, ok := evt.Data.(ContactEvent); ok && evt.Type == EventContact {
			out = append(out, c)
		}
	}
	return out
}

// Impacts returns the projectiles that hit ground this frame.
func (q *EventQueue) Impacts() []Entity {
	if q == nil {
		return nil
	}
	var out []Entity
	for _, evt := range q.items {
		if e, ok := evt.Data.(Entity); ok && evt.Type == EventImpact {
			out = append(out, e)
		}
	}
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
