package sim

import (
	"webhook-lab/internal/catalog"
	"webhook-lab/internal/config"
	"webhook-lab/internal/sched"
)

// LifecycleFinal is the terminal step of the lifecycle animation.
const LifecycleFinal = 4

// markerPositions is the payload marker position, in percent along the line,
// for each step.
var markerPositions = [LifecycleFinal + 1]int{10, 15, 40, 65, 90}

// Lifecycle steps through the four webhook stages on a timer.
type Lifecycle struct {
	group   *sched.Group
	timings config.Timings
	tracer  *Tracer
	stages  []catalog.Stage

	step    int
	playing bool
	next    *sched.Timer
}

// NewLifecycle creates a lifecycle simulator at step 0.
func NewLifecycle(g *sched.Group, timings config.Timings, stages []catalog.Stage, tracer *Tracer) *Lifecycle {
	return &Lifecycle{group: g, timings: timings, stages: stages, tracer: tracer}
}

// Start restarts the animation from step 0, cancelling any pending advance.
func (l *Lifecycle) Start() {
	l.next.Stop()
	l.step = 0
	l.playing = true
	l.tracer.Emit(SimLifecycle, "start", "", SeverityInfo)
	l.schedule()
}

func (l *Lifecycle) schedule() {
	l.next = l.group.After(l.timings.LifecycleStepDelay, l.advance)
}

func (l *Lifecycle) advance() {
	if !l.playing || l.step >= LifecycleFinal {
		return
	}
	l.step++
	l.tracer.Emit(SimLifecycle, "advance", l.Label(), SeverityInfo)
	if l.step == LifecycleFinal {
		l.playing = false
		return
	}
	l.schedule()
}

// Step returns the current step, 0 through LifecycleFinal.
func (l *Lifecycle) Step() int { return l.step }

// Playing reports whether the animation is running.
func (l *Lifecycle) Playing() bool { return l.playing }

// Stages returns the stages being animated.
func (l *Lifecycle) Stages() []catalog.Stage { return l.stages }

// Label returns the status line for the current step.
func (l *Lifecycle) Label() string {
	if l.step == 0 || l.step > len(l.stages) {
		return "Ready to Start"
	}
	return l.stages[l.step-1].Detail
}

// MarkerPosition returns the payload marker position in percent.
func (l *Lifecycle) MarkerPosition() int { return markerPositions[l.step] }

// MarkerVisible reports whether the payload is travelling.
func (l *Lifecycle) MarkerVisible() bool { return l.step >= 1 && l.step <= 3 }
