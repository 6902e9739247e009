package sim

import (
	"webhook-lab/internal/config"
	"webhook-lab/internal/sched"
)

// Webhook simulates a provider pushing a single event to a listening server.
type Webhook struct {
	group   *sched.Group
	timings config.Timings
	tracer  *Tracer

	triggered bool
	received  bool
}

// NewWebhook creates a listening webhook simulator.
func NewWebhook(g *sched.Group, timings config.Timings, tracer *Tracer) *Webhook {
	return &Webhook{group: g, timings: timings, tracer: tracer}
}

// Trigger sends the event. It reports false while a delivery is in flight.
func (w *Webhook) Trigger() bool {
	if w.triggered {
		return false
	}
	w.triggered = true
	w.received = false
	w.tracer.Emit(SimWebhook, "trigger", "Order status changed", SeverityInfo)
	w.group.After(w.timings.WebhookDeliverDelay, func() {
		w.received = true
		w.tracer.Emit(SimWebhook, "received", "Order Ready Event Received!", SeveritySuccess)
		w.group.After(w.timings.WebhookSettleDelay, func() {
			w.triggered = false
			w.tracer.Emit(SimWebhook, "settle", "Listening for events...", SeverityInfo)
		})
	})
	return true
}

// Triggered reports whether a delivery is in flight.
func (w *Webhook) Triggered() bool { return w.triggered }

// Received reports whether the last delivery arrived.
func (w *Webhook) Received() bool { return w.received }

// Caption returns the server status line.
func (w *Webhook) Caption() string {
	switch {
	case w.triggered && !w.received:
		return "Transmitting event..."
	case w.received:
		return "Order Ready Event Received!"
	default:
		return "Listening for events..."
	}
}
