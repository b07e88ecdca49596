package form

import (
	"fmt"
	"sort"
)

type EventKind string

const (
	EventAddEducation  EventKind = "add-education"
	EventAddExperience EventKind = "add-experience"
	EventAddSkill      EventKind = "add-skill"
	EventSave          EventKind = "save"
	EventPrint         EventKind = "print"
	EventRemoveRow     EventKind = "remove-row"
	EventNavigate      EventKind = "navigate"
	EventScroll        EventKind = "scroll"
)

// Event is one user or timer input. Target is a row or section id; Offset
// is the scroll position for EventScroll.
type Event struct {
	Kind   EventKind
	Target string
	Offset int
}

type Handler func(c *Controller, ev Event) error

// Dispatcher maps event kinds to handlers.
type Dispatcher struct {
	handlers map[EventKind]Handler
}

// NewDispatcher returns the default handler table.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: map[EventKind]Handler{
		EventAddEducation:  func(c *Controller, _ Event) error { c.AddEducation(); return nil },
		EventAddExperience: func(c *Controller, _ Event) error { c.AddExperience(); return nil },
		EventAddSkill:      func(c *Controller, _ Event) error { c.AddSkill(); return nil },
		EventSave:          func(c *Controller, _ Event) error { return c.ToggleLock() },
		EventPrint:         func(c *Controller, _ Event) error { return c.Print() },
		EventRemoveRow:     func(c *Controller, ev Event) error { c.RemoveRow(ev.Target); return nil },
		EventNavigate:      func(c *Controller, ev Event) error { c.tracker.Navigate(ev.Target); return nil },
		EventScroll:        func(c *Controller, ev Event) error { c.tracker.OnScroll(ev.Offset); return nil },
	}}
}

// Handle installs or replaces the handler for kind. A nil handler removes it.
func (d *Dispatcher) Handle(kind EventKind, h Handler) {
	if h == nil {
		delete(d.handlers, kind)
		return
	}
	d.handlers[kind] = h
}

// Kinds lists the handled event kinds, sorted.
func (d *Dispatcher) Kinds() []EventKind {
	out := make([]EventKind, 0, len(d.handlers))
	for k := range d.handlers {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (d *Dispatcher) Dispatch(c *Controller, ev Event) error {
	h, ok := d.handlers[ev.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
	return h(c, ev)
}
