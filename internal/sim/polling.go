package sim

import (
	"fmt"

	"webhook-lab/internal/config"
	"webhook-lab/internal/sched"
)

// PollStatus is the visible state of the polling client.
type PollStatus string

const (
	PollIdle     PollStatus = "idle"
	PollChecking PollStatus = "checking"
	PollReady    PollStatus = "ready"
)

const (
	pollLogCap   = 5
	pollReadyIdx = 4
)

// Polling simulates a client asking the server for an order every interval
// until the order is ready on the fifth attempt.
type Polling struct {
	group   *sched.Group
	timings config.Timings
	tracer  *Tracer

	attempt int
	status  PollStatus
	log     []string
	running bool
	cycle   *sched.Timer
}

// NewPolling creates an idle polling simulator.
func NewPolling(g *sched.Group, timings config.Timings, tracer *Tracer) *Polling {
	return &Polling{group: g, timings: timings, tracer: tracer, status: PollIdle}
}

// Start resets the simulator and begins the polling cycle. It reports false
// when a cycle is already running.
func (p *Polling) Start() bool {
	if p.running {
		return false
	}
	p.attempt = 0
	p.log = nil
	p.status = PollIdle
	p.running = true
	p.cycle = p.group.Every(p.timings.PollInterval, p.request)
	p.tracer.Emit(SimPolling, "start", "", SeverityInfo)
	return true
}

func (p *Polling) request() {
	if !p.running || p.attempt > pollReadyIdx {
		return
	}
	p.status = PollChecking
	p.push(fmt.Sprintf("Request #%d: Are you ready?", p.attempt+1), "request")
	p.group.After(p.timings.PollEvaluateDelay, p.evaluate)
}

func (p *Polling) evaluate() {
	if p.attempt == pollReadyIdx {
		p.push("Response: YES! Order Ready.", "ready")
		p.status = PollReady
		p.running = false
		p.cycle.Stop()
		return
	}
	p.push("Response: No. (404)", "not_ready")
	p.attempt++
	p.status = PollIdle
}

func (p *Polling) push(line, kind string) {
	p.log = append([]string{line}, p.log...)
	if len(p.log) > pollLogCap {
		p.log = p.log[:pollLogCap]
	}
	sev := SeverityInfo
	if kind == "ready" {
		sev = SeveritySuccess
	}
	p.tracer.Emit(SimPolling, kind, line, sev)
}

// Status returns the current client status.
func (p *Polling) Status() PollStatus { return p.status }

// Attempt returns the zero-based index of the current attempt.
func (p *Polling) Attempt() int { return p.attempt }

// Running reports whether a polling cycle is active.
func (p *Polling) Running() bool { return p.running }

// Log returns the most recent log lines, newest first.
func (p *Polling) Log() []string {
	out := make([]string, len(p.log))
	copy(out, p.log)
	return out
}
