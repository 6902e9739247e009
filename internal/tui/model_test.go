package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"webhook-lab/internal/catalog"
	"webhook-lab/internal/config"
	"webhook-lab/internal/sim"
)

type fakeProgram struct{ msgs []tea.Msg }

func (f *fakeProgram) Send(msg tea.Msg) { f.msgs = append(f.msgs, msg) }

func newTestModel() Model {
	return New(config.Default(), catalog.Default(), nil, nil)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		mi, _ := m.Update(msg)
		m = mi.(Model)
	}
	return m
}

// run feeds frames 100ms apart until d of wall time has passed.
func run(m Model, start time.Time, d time.Duration) Model {
	for t := time.Duration(0); t <= d; t += 100 * time.Millisecond {
		mi, _ := m.Update(frameMsg(start.Add(t)))
		m = mi.(Model)
	}
	return m
}

func TestTabNavigation(t *testing.T) {
	m := newTestModel()
	if m.Active() != 0 {
		t.Fatalf("expected first tab, got %d", m.Active())
	}
	m = press(t, m, "4")
	if m.Active() != 3 {
		t.Fatalf("expected security tab, got %d", m.Active())
	}
	if _, ok := m.section.(*securitySection); !ok {
		t.Fatalf("unexpected section %T", m.section)
	}
	m = press(t, m, "tab", "tab", "tab")
	if m.Active() != 0 {
		t.Fatalf("tab should wrap to 0, got %d", m.Active())
	}
	m = press(t, m, "shift+tab")
	if m.Active() != 5 {
		t.Fatalf("shift+tab should wrap to 5, got %d", m.Active())
	}
}

func TestSwitchingTabStopsTimers(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "p", "w")
	old := m.group
	if old.Live() == 0 {
		t.Fatalf("expected live timers after starting simulations")
	}
	m = press(t, m, "2")
	if !old.Stopped() || old.Live() != 0 {
		t.Fatalf("previous section's timers were not cancelled")
	}
	m = press(t, m, "1")
	cs := m.section.(*conceptSection)
	if cs.polling.Running() || cs.webhook.Triggered() {
		t.Fatalf("remounted section should start fresh")
	}
}

func TestConceptFramesDriveSimulation(t *testing.T) {
	m := press(t, newTestModel(), "p", "w")
	cs := m.section.(*conceptSection)
	m = press(t, m, "p")
	if cs.polling.Attempt() != 0 || len(cs.polling.Log()) != 0 {
		t.Fatalf("second start should be ignored")
	}
	start := time.Unix(1000, 0)
	m = run(m, start, 1600*time.Millisecond)
	if cs.polling.Status() != sim.PollChecking {
		t.Fatalf("expected checking after first interval, got %s", cs.polling.Status())
	}
	if !cs.webhook.Received() {
		t.Fatalf("webhook should be received after 1.2s")
	}
	m = run(m, start.Add(1700*time.Millisecond), 7*time.Second)
	if cs.polling.Status() != sim.PollReady {
		t.Fatalf("expected ready after five cycles, got %s", cs.polling.Status())
	}
	if cs.webhook.Triggered() {
		t.Fatalf("webhook should have settled")
	}
	if !strings.Contains(m.View(), "Response: YES! Order Ready.") {
		t.Fatalf("view missing ready line")
	}
}

func TestFrameStepIsCapped(t *testing.T) {
	m := press(t, newTestModel(), "2", "s")
	start := time.Unix(0, 0)
	mi, _ := m.Update(frameMsg(start))
	mi, _ = mi.(Model).Update(frameMsg(start.Add(time.Hour)))
	m = mi.(Model)
	if m.sched.Now() != maxFrameStep {
		t.Fatalf("expected virtual clock %v, got %v", maxFrameStep, m.sched.Now())
	}
}

func TestSecurityKeysGuardInFlight(t *testing.T) {
	m := press(t, newTestModel(), "4", "n", "d")
	ss := m.section.(*securitySection)
	if n := len(ss.sec.Log()); n != 1 {
		t.Fatalf("second request should be ignored while in flight, log has %d", n)
	}
	if !strings.Contains(m.View(), "[n] send new event") {
		t.Fatalf("controls missing from view")
	}
	m = run(m, time.Unix(0, 0), time.Second)
	m = press(t, m, "d")
	m = run(m, time.Unix(10, 0), time.Second)
	if ss.sec.Processed() != 1 {
		t.Fatalf("duplicate should not be processed, got %d", ss.sec.Processed())
	}
	m = press(t, m, "v", "c")
	if !ss.sec.Verification() || len(ss.sec.Log()) != 0 {
		t.Fatalf("toggle/clear not applied")
	}
}

func TestAnatomySelection(t *testing.T) {
	m := press(t, newTestModel(), "3", "j")
	if !strings.Contains(m.View(), "/webhooks/github") {
		t.Fatalf("expected second event rendered")
	}
	m = press(t, m, "k", "k")
	if !strings.Contains(m.View(), "/webhooks/auth0") {
		t.Fatalf("expected wrap to last event")
	}
}

func TestQuizFlow(t *testing.T) {
	m := press(t, newTestModel(), "6")
	qs := m.section.(*quizSection)
	m = press(t, m, "enter")
	if qs.engine.Submitted() {
		t.Fatalf("submit accepted with no answers")
	}
	for i, q := range qs.engine.Questions() {
		keys := []string{}
		for j := 0; j <= q.CorrectIndex; j++ {
			keys = append(keys, "right")
		}
		m = press(t, m, keys...)
		if i < len(qs.engine.Questions())-1 {
			m = press(t, m, "down")
		}
	}
	m = press(t, m, "enter")
	if !qs.engine.Submitted() || qs.engine.Score() != 4 {
		t.Fatalf("expected perfect submitted quiz, score %d", qs.engine.Score())
	}
	if !strings.Contains(m.View(), "Perfect! You're a Webhook Master.") {
		t.Fatalf("verdict missing from view")
	}
	m = press(t, m, "r")
	if qs.engine.Submitted() || qs.engine.Answered() != 0 {
		t.Fatalf("reset not applied")
	}
}

func TestConfigReloadAppliesOnNextMount(t *testing.T) {
	m := newTestModel()
	cfg := config.Default()
	cfg.Queue.FloodSize = 4
	mi, _ := m.Update(configMsg{cfg: cfg})
	m = press(t, mi.(Model), "5", "f")
	as := m.section.(*architectureSection)
	if n := len(as.q.Pending()); n != 4 {
		t.Fatalf("expected 4 queued events, got %d", n)
	}
	if !strings.Contains(m.View(), "config reloaded") {
		t.Fatalf("reload notice missing")
	}
}

func TestForwardReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	if err := os.WriteFile(path, []byte("queue:\n  flood_size: 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l, err := config.NewLoader(path, nil)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	fp := &fakeProgram{}
	forwardReloads(l, fp)
	if _, err := l.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(fp.msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(fp.msgs))
	}
	if msg, ok := fp.msgs[0].(configMsg); !ok || msg.cfg.Queue.FloodSize != 5 {
		t.Fatalf("unexpected message %#v", fp.msgs[0])
	}
}

func TestQuitStopsSection(t *testing.T) {
	m := press(t, newTestModel(), "p")
	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !mi.(Model).group.Stopped() {
		t.Fatalf("quit should stop the mounted section")
	}
}
