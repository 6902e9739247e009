package sim

import (
	"context"
	"fmt"
	"time"

	"webhook-lab/internal/catalog"
	"webhook-lab/internal/config"
	"webhook-lab/internal/logging"
	"webhook-lab/internal/quiz"
	"webhook-lab/internal/sched"
)

// Scenarios lists the names accepted by NewDemo.
var Scenarios = []string{"concept", "lifecycle", "security", "architecture", "quiz"}

// action runs once the previous one has completed. It reports false when it
// must be retried on the next frame.
type action func() bool

// Demo drives one simulator through a scripted scenario without a UI.
type Demo struct {
	name   string
	sched  *sched.Scheduler
	group  *sched.Group
	frame  time.Duration
	speed  float64
	script []action
	done   func() bool
}

// NewDemo builds the scripted scenario called name. speed scales virtual
// time against wall time; values <= 0 run at normal speed.
func NewDemo(name string, cfg *config.LabConfig, cat *catalog.Catalog, tracer *Tracer, speed float64) (*Demo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("demo %s: %w", name, err)
	}
	if speed <= 0 {
		speed = 1
	}
	s := sched.New()
	d := &Demo{name: name, sched: s, group: s.NewGroup(), frame: cfg.Timings.TUIFrame, speed: speed}
	t := cfg.Timings
	switch name {
	case "concept":
		p := NewPolling(d.group, t, tracer)
		w := NewWebhook(d.group, t, tracer)
		d.script = []action{
			func() bool { p.Start(); return true },
			func() bool { return w.Trigger() },
		}
		d.done = func() bool { return p.Status() == PollReady && !w.Triggered() }
	case "lifecycle":
		l := NewLifecycle(d.group, t, cat.Stages(), tracer)
		d.script = []action{func() bool { l.Start(); return true }}
		d.done = func() bool { return !l.Playing() }
	case "security":
		sec := NewSecurity(d.group, t, tracer)
		d.script = []action{
			func() bool { return sec.SimulateRequest(false) },
			func() bool { return sec.SimulateRequest(true) },
			func() bool { sec.ToggleVerification(); return true },
			func() bool { return sec.SimulateRequest(false) },
		}
		d.done = func() bool { return !sec.InFlight() }
	case "architecture":
		q := NewQueue(d.group, t, cfg.Queue, tracer)
		d.script = []action{func() bool { q.Flood(); return true }}
		d.done = func() bool { return q.Persisted() >= cfg.Queue.FloodSize }
	case "quiz":
		e := quiz.New(cat.Questions())
		d.script = quizScript(e, tracer)
		d.done = e.Submitted
	default:
		return nil, fmt.Errorf("unknown scenario %q (want one of %v)", name, Scenarios)
	}
	return d, nil
}

// quizScript answers every question, getting the last one wrong, then
// submits and traces the review.
func quizScript(e *quiz.Engine, tracer *Tracer) []action {
	var script []action
	questions := e.Questions()
	for i, q := range questions {
		opt := q.CorrectIndex
		if i == len(questions)-1 {
			opt = (opt + 1) % len(q.Options)
		}
		script = append(script, func() bool {
			e.Select(q.ID, opt)
			tracer.Emit(SimQuiz, "answer", fmt.Sprintf("Q%d: %s", q.ID, q.Options[opt]), SeverityInfo)
			return true
		})
	}
	return append(script, func() bool {
		if err := e.Submit(); err != nil {
			tracer.Emit(SimQuiz, "submit", err.Error(), SeverityError)
			return true
		}
		tracer.Emit(SimQuiz, "score", fmt.Sprintf("Score %d/%d: %s", e.Score(), e.Total(), e.Verdict()), SeveritySuccess)
		for _, item := range e.Review() {
			sev := SeveritySuccess
			msg := fmt.Sprintf("Q%d correct: %s", item.QuestionID, item.Chosen)
			if !item.Correct {
				sev = SeverityError
				msg = fmt.Sprintf("Q%d wrong: %s (answer: %s)", item.QuestionID, item.Chosen, item.Answer)
			}
			tracer.Emit(SimQuiz, "review", msg, sev)
		}
		return true
	})
}

// Name returns the scenario name.
func (d *Demo) Name() string { return d.name }

// Step advances the scenario by elapsed virtual time and runs pending script
// actions. It reports whether the scenario has finished.
func (d *Demo) Step(elapsed time.Duration) bool {
	d.sched.Advance(elapsed)
	for len(d.script) > 0 && d.script[0]() {
		d.script = d.script[1:]
	}
	return len(d.script) == 0 && d.done()
}

// Run plays the scenario in real time until it finishes or ctx is done.
func (d *Demo) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Info("starting demo", "scenario", d.name, "speed", d.speed)
	ticker := time.NewTicker(d.frame)
	defer ticker.Stop()
	defer d.group.Stop()

	virtual := time.Duration(float64(d.frame) * d.speed)
	if d.Step(0) {
		return nil
	}
	for {
		select {
		case <-ticker.C:
			if d.Step(virtual) {
				log.Info("demo finished", "scenario", d.name, "virtual_time", d.sched.Now())
				return nil
			}
		case <-ctx.Done():
			log.Info("stopping demo", "scenario", d.name)
			return ctx.Err()
		}
	}
}
