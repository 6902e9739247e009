package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"webhook-lab/internal/sim"
)

type conceptSection struct {
	polling *sim.Polling
	webhook *sim.Webhook
	poll    key.Binding
	trigger key.Binding
}

func newConceptSection(e env) section {
	return &conceptSection{
		polling: sim.NewPolling(e.group, e.cfg.Timings, e.tracer),
		webhook: sim.NewWebhook(e.group, e.cfg.Timings, e.tracer),
		poll:    binding("start polling", "p"),
		trigger: binding("trigger webhook", "w"),
	}
}

func (s *conceptSection) bindings() []key.Binding {
	s.poll.SetEnabled(!s.polling.Running())
	s.trigger.SetEnabled(!s.webhook.Triggered())
	return []key.Binding{s.poll, s.trigger}
}

func (s *conceptSection) handleKey(msg tea.KeyMsg) {
	s.bindings()
	switch {
	case key.Matches(msg, s.poll):
		s.polling.Start()
	case key.Matches(msg, s.trigger):
		s.webhook.Trigger()
	}
}

func (s *conceptSection) view(f viewFrame) string {
	half := f.width/2 - 2
	if half < 30 {
		half = 30
	}

	var poll strings.Builder
	poll.WriteString(titleStyle.Render("Polling") + mutedStyle.Render("  client keeps asking") + "\n\n")
	status := string(s.polling.Status())
	switch s.polling.Status() {
	case sim.PollChecking:
		status = warnStyle.Render(f.spinner + " checking")
	case sim.PollReady:
		status = successStyle.Render("ready")
	}
	fmt.Fprintf(&poll, "Status:  %s\nAttempt: %d/5\n\n", status, s.polling.Attempt())
	for _, line := range s.polling.Log() {
		switch {
		case strings.HasPrefix(line, "Response: YES"):
			line = successStyle.Render(line)
		case strings.HasPrefix(line, "Response: No"):
			line = errorStyle.Render(line)
		}
		poll.WriteString(line + "\n")
	}

	var hook strings.Builder
	hook.WriteString(titleStyle.Render("Webhook") + mutedStyle.Render("  server pushes once") + "\n\n")
	caption := s.webhook.Caption()
	switch {
	case s.webhook.Received():
		caption = successStyle.Render(caption)
	case s.webhook.Triggered():
		caption = warnStyle.Render(f.spinner + " " + caption)
	default:
		caption = mutedStyle.Render(caption)
	}
	hook.WriteString("Provider ──POST /webhook──▶ Your server\n\n")
	hook.WriteString(caption + "\n")

	left := panelStyle.Width(half).Render(strings.TrimRight(poll.String(), "\n"))
	right := panelStyle.Width(half).Render(strings.TrimRight(hook.String(), "\n"))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		controls(s.bindings()...),
	)
}
