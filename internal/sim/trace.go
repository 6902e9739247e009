// Trace events emitted by the simulators
package sim

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Severity tags a log entry for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Simulator names used in trace events.
const (
	SimPolling   = "polling"
	SimWebhook   = "webhook"
	SimLifecycle = "lifecycle"
	SimSecurity  = "security"
	SimQueue     = "queue"
	SimQuiz      = "quiz"
)

// TraceEvent records one simulator state transition.
type TraceEvent struct {
	Session   string    `json:"session"`
	Simulator string    `json:"simulator"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message,omitempty"`
	Severity  Severity  `json:"severity"`
	Timestamp time.Time `json:"ts"`
}

// EventWriter is an interface to support different trace outputs.
type EventWriter interface {
	WriteEvent(TraceEvent) error
}

// Optional: writers may support batch mode
type batchEventWriter interface {
	WriteEvents([]TraceEvent) error
}

// Tracer stamps and forwards trace events for one mounted section.
// A nil *Tracer or one without a writer drops events.
type Tracer struct {
	session string
	writer  EventWriter
	log     *slog.Logger
	now     func() time.Time
}

// NewTracer creates a tracer with a fresh session id.
func NewTracer(w EventWriter, log *slog.Logger) *Tracer {
	if log == nil {
		log = slog.Default()
	}
	return &Tracer{
		session: uuid.NewString(),
		writer:  w,
		log:     log,
		now:     time.Now,
	}
}

// WithClock replaces the wall clock; used by tests.
func (t *Tracer) WithClock(now func() time.Time) *Tracer {
	t.now = now
	return t
}

// Session returns the tracer's session id.
func (t *Tracer) Session() string {
	if t == nil {
		return ""
	}
	return t.session
}

// Now returns the tracer's wall-clock time in the local zone.
func (t *Tracer) Now() time.Time {
	if t == nil || t.now == nil {
		return time.Now()
	}
	return t.now()
}

// Emit forwards an event. Write failures are logged, never returned.
func (t *Tracer) Emit(simulator, kind, msg string, sev Severity) {
	if t == nil || t.writer == nil {
		return
	}
	ev := TraceEvent{
		Session:   t.session,
		Simulator: simulator,
		Kind:      kind,
		Message:   msg,
		Severity:  sev,
		Timestamp: t.Now().UTC(),
	}
	if err := t.writer.WriteEvent(ev); err != nil {
		t.log.Warn("trace write failed", "simulator", simulator, "kind", kind, "error", err)
	}
}
