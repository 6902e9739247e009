package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"webhook-lab/internal/sim"
)

const trackWidth = 50

type lifecycleSection struct {
	lc    *sim.Lifecycle
	start key.Binding
}

func newLifecycleSection(e env) section {
	return &lifecycleSection{
		lc:    sim.NewLifecycle(e.group, e.cfg.Timings, e.catalog.Stages(), e.tracer),
		start: binding("start simulation", "enter", "s"),
	}
}

func (s *lifecycleSection) bindings() []key.Binding {
	return []key.Binding{s.start}
}

func (s *lifecycleSection) handleKey(msg tea.KeyMsg) {
	if key.Matches(msg, s.start) {
		s.lc.Start()
	}
}

func (s *lifecycleSection) view(f viewFrame) string {
	step := s.lc.Step()
	cardWidth := f.width/4 - 3
	if cardWidth < 18 {
		cardWidth = 18
	}
	var cards []string
	for i, st := range s.lc.Stages() {
		style := panelStyle
		title := fmt.Sprintf("%d. %s", i+1, st.Title)
		switch {
		case step == i+1:
			style = activePanel
			title = accentStyle.Render(title)
		case step > i+1:
			title = successStyle.Render("✓ " + title)
		default:
			title = mutedStyle.Render(title)
		}
		body := title + "\n" + wordwrap.String(st.Description, cardWidth)
		cards = append(cards, style.Width(cardWidth).Render(body))
	}

	track := []rune(strings.Repeat("─", trackWidth))
	if s.lc.MarkerVisible() {
		pos := s.lc.MarkerPosition() * (trackWidth - 1) / 100
		track[pos] = '●'
	}
	label := s.lc.Label()
	if s.lc.Playing() {
		label = f.spinner + " " + label
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		"Provider "+accentStyle.Render(string(track))+" Your App",
		"",
		"Status: "+titleStyle.Render(label),
		"",
		controls(s.bindings()...),
	)
}
