package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"webhook-lab/internal/inspector"
)

const anatomyNote = `Notice that every webhook is just a standard HTTP POST request. The "magic" is simply the convention of JSON schemas and specific headers like signatures.`

type anatomySection struct {
	in   *inspector.Inspector
	up   key.Binding
	down key.Binding
}

func newAnatomySection(e env) section {
	return &anatomySection{
		in:   inspector.New(e.catalog.Events()),
		up:   binding("previous event", "up", "k"),
		down: binding("next event", "down", "j"),
	}
}

func (s *anatomySection) bindings() []key.Binding {
	return []key.Binding{s.up, s.down}
}

func (s *anatomySection) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, s.up):
		s.in.Prev()
	case key.Matches(msg, s.down):
		s.in.Next()
	}
}

func (s *anatomySection) view(f viewFrame) string {
	listWidth := f.width/3 - 2
	if listWidth < 24 {
		listWidth = 24
	}
	var list strings.Builder
	list.WriteString(titleStyle.Render("Sample Events") + "\n\n")
	for i, ev := range s.in.Events() {
		name := "  " + ev.Name
		if i == s.in.Index() {
			name = accentStyle.Render("▸ " + ev.Name)
		}
		list.WriteString(name + "\n")
		list.WriteString(mutedStyle.Render(wordwrap.String("  "+ev.Description, listWidth)) + "\n")
	}
	list.WriteString("\n" + warnStyle.Render(wordwrap.String(anatomyNote, listWidth)))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Width(listWidth).Render(list.String()),
			activePanel.Render(s.request()),
		),
		controls(s.bindings()...),
	)
}

func (s *anatomySection) request() string {
	ev, ok := s.in.Selected()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(mutedStyle.Render("request_inspector.http") + "\n\n")
	for _, h := range ev.Headers {
		name, value := inspector.HeaderLine(h)
		b.WriteString(accentStyle.Render(name) + " " + successStyle.Render(value) + "\n")
	}
	b.WriteString("\n")
	body, err := ev.IndentBody()
	if err != nil {
		return b.String() + errorStyle.Render(err.Error())
	}
	b.WriteString(body)
	return b.String()
}
