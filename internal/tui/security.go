package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"webhook-lab/internal/sim"
)

const securityLogHeight = 10

type securitySection struct {
	sec    *sim.Security
	vp     viewport.Model
	verify key.Binding
	send   key.Binding
	dup    key.Binding
	clear  key.Binding
}

func newSecuritySection(e env) section {
	return &securitySection{
		sec:    sim.NewSecurity(e.group, e.cfg.Timings, e.tracer),
		vp:     viewport.New(0, securityLogHeight),
		verify: binding("toggle verification", "v"),
		send:   binding("send new event", "n"),
		dup:    binding("simulate duplicate", "d"),
		clear:  binding("clear log", "c"),
	}
}

func (s *securitySection) bindings() []key.Binding {
	s.send.SetEnabled(!s.sec.InFlight())
	s.dup.SetEnabled(!s.sec.InFlight())
	return []key.Binding{s.verify, s.send, s.dup, s.clear}
}

func (s *securitySection) handleKey(msg tea.KeyMsg) {
	s.bindings()
	switch {
	case key.Matches(msg, s.verify):
		s.sec.ToggleVerification()
	case key.Matches(msg, s.send):
		s.sec.SimulateRequest(false)
	case key.Matches(msg, s.dup):
		s.sec.SimulateRequest(true)
	case key.Matches(msg, s.clear):
		s.sec.ClearLog()
	}
}

func severityStyle(sev sim.Severity) lipgloss.Style {
	switch sev {
	case sim.SeveritySuccess:
		return successStyle
	case sim.SeverityError:
		return errorStyle
	default:
		return lipgloss.NewStyle()
	}
}

func (s *securitySection) view(f viewFrame) string {
	verification := successStyle.Render("ON (HMAC-SHA256)")
	if !s.sec.Verification() {
		verification = errorStyle.Render("OFF (Insecure)")
	}
	state := mutedStyle.Render("idle")
	if s.sec.InFlight() {
		state = warnStyle.Render(f.spinner + " processing")
	}
	header := fmt.Sprintf("Signature verification: %s   Receiver: %s   DB writes: %s",
		verification, state, titleStyle.Render(fmt.Sprint(s.sec.Processed())))

	lines := make([]string, 0, len(s.sec.Log()))
	for _, e := range s.sec.Log() {
		lines = append(lines, severityStyle(e.Severity).Render(e.Message))
	}
	content := mutedStyle.Render("Waiting for requests...")
	if len(lines) > 0 {
		content = strings.Join(lines, "\n")
	}
	s.vp.Width = f.width - 4
	s.vp.SetContent(content)
	s.vp.GotoTop()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panelStyle.Render(s.vp.View()),
		controls(s.bindings()...),
	)
}
