// Package inspector renders sample webhook deliveries as raw HTTP requests.
package inspector

import (
	"strings"

	"webhook-lab/internal/catalog"
)

// Inspector holds the selected sample event.
type Inspector struct {
	events   []catalog.SampleEvent
	selected int
}

// New creates an inspector with the first event selected.
func New(events []catalog.SampleEvent) *Inspector {
	return &Inspector{events: events}
}

// Events returns the selectable events.
func (i *Inspector) Events() []catalog.SampleEvent { return i.events }

// Index returns the position of the selected event.
func (i *Inspector) Index() int { return i.selected }

// Selected returns the selected event. ok is false when there are no events.
func (i *Inspector) Selected() (ev catalog.SampleEvent, ok bool) {
	if len(i.events) == 0 {
		return catalog.SampleEvent{}, false
	}
	return i.events[i.selected], true
}

// Select switches to the event with the given id. Unknown ids are ignored.
func (i *Inspector) Select(id string) bool {
	for idx, ev := range i.events {
		if ev.ID == id {
			i.selected = idx
			return true
		}
	}
	return false
}

// Next selects the following event, wrapping around.
func (i *Inspector) Next() {
	if len(i.events) > 0 {
		i.selected = (i.selected + 1) % len(i.events)
	}
}

// Prev selects the preceding event, wrapping around.
func (i *Inspector) Prev() {
	if len(i.events) > 0 {
		i.selected = (i.selected - 1 + len(i.events)) % len(i.events)
	}
}

// HeaderLine formats one header. The request line carries no colon.
func HeaderLine(h catalog.Header) (name, value string) {
	if h.Name == "POST" {
		return h.Name, h.Value
	}
	return h.Name + ":", h.Value
}

// Render returns the selected event as a raw request: headers in order, a
// blank line, then the indented JSON body.
func (i *Inspector) Render() (string, error) {
	ev, ok := i.Selected()
	if !ok {
		return "", nil
	}
	return RenderEvent(ev)
}

// RenderEvent renders a single event the way Render does.
func RenderEvent(ev catalog.SampleEvent) (string, error) {
	body, err := ev.IndentBody()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, h := range ev.Headers {
		name, value := HeaderLine(h)
		b.WriteString(name)
		b.WriteByte(' ')
		b.WriteString(value)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(body)
	return b.String(), nil
}
