package sim

import (
	"fmt"
	"time"

	"webhook-lab/internal/config"
	"webhook-lab/internal/sched"
)

// SecurityEventID is the event identifier every simulated request carries.
const SecurityEventID = "evt_12345"

// LogEntry is one line of the security receiver log.
type LogEntry struct {
	Message  string
	Severity Severity
}

// Security simulates a webhook receiver with optional signature
// verification and idempotent processing.
type Security struct {
	group   *sched.Group
	timings config.Timings
	tracer  *Tracer

	verify    bool
	inFlight  bool
	log       []LogEntry
	processed map[string]struct{}
	count     int
}

// NewSecurity creates a receiver with verification disabled.
func NewSecurity(g *sched.Group, timings config.Timings, tracer *Tracer) *Security {
	return &Security{
		group:     g,
		timings:   timings,
		tracer:    tracer,
		processed: make(map[string]struct{}),
	}
}

// ToggleVerification flips signature verification and returns the new value.
func (s *Security) ToggleVerification() bool {
	s.verify = !s.verify
	s.tracer.Emit(SimSecurity, "toggle", fmt.Sprintf("verification=%t", s.verify), SeverityInfo)
	return s.verify
}

// SimulateRequest delivers the fixed event, as a retry when duplicate is set.
// It reports false while a previous request is still being processed.
func (s *Security) SimulateRequest(duplicate bool) bool {
	if s.inFlight {
		return false
	}
	s.inFlight = true
	stamp := s.tracer.Now().Format(time.TimeOnly)
	s.push("request", fmt.Sprintf("[%s] Incoming Request: %s", stamp, SecurityEventID), SeverityInfo)

	delay := s.timings.SecurityFastDelay
	if s.verify {
		delay = s.timings.SecurityVerifyDelay
	}
	s.group.After(delay, func() { s.resolve(duplicate) })
	return true
}

func (s *Security) resolve(duplicate bool) {
	defer func() { s.inFlight = false }()
	if s.verify {
		s.push("verify", "Verifying HMAC Signature...", SeverityInfo)
	} else {
		s.push("verify", "Signature verification skipped (Insecure)", SeverityError)
	}

	if _, seen := s.processed[SecurityEventID]; duplicate && seen {
		s.push("duplicate", fmt.Sprintf("Duplicate detected (%s). Returning 200 OK without processing.", SecurityEventID), SeveritySuccess)
		return
	}
	s.processed[SecurityEventID] = struct{}{}
	s.count++
	s.push("respond", "Response sent: 200 OK in 45ms", SeverityInfo)
	s.push("processed", "Event Processed Successfully. Database Updated.", SeveritySuccess)
}

func (s *Security) push(kind, msg string, sev Severity) {
	s.log = append([]LogEntry{{Message: msg, Severity: sev}}, s.log...)
	s.tracer.Emit(SimSecurity, kind, msg, sev)
}

// ClearLog empties the log and forgets processed events.
func (s *Security) ClearLog() {
	s.log = nil
	s.processed = make(map[string]struct{})
	s.tracer.Emit(SimSecurity, "clear", "", SeverityInfo)
}

// Verification reports whether signature verification is on.
func (s *Security) Verification() bool { return s.verify }

// InFlight reports whether a request is being processed.
func (s *Security) InFlight() bool { return s.inFlight }

// Processed returns how many requests reached the database.
func (s *Security) Processed() int { return s.count }

// Log returns the receiver log, newest first.
func (s *Security) Log() []LogEntry {
	out := make([]LogEntry, len(s.log))
	copy(out, s.log)
	return out
}
