package sim

import (
	"errors"
	"time"
)

// collectWriter records every trace event it receives.
type collectWriter struct{ events []TraceEvent }

func (c *collectWriter) WriteEvent(ev TraceEvent) error {
	c.events = append(c.events, ev)
	return nil
}

// messages returns the non-empty messages recorded for one simulator, in
// write order.
func (c *collectWriter) messages(simulator string) []string {
	var out []string
	for _, ev := range c.events {
		if ev.Simulator == simulator && ev.Message != "" {
			out = append(out, ev.Message)
		}
	}
	return out
}

type failingWriter struct{}

func (failingWriter) WriteEvent(TraceEvent) error { return errors.New("disk full") }

func fixedClock() func() time.Time {
	ts := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)
	return func() time.Time { return ts }
}
