package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"webhook-lab/internal/sim"
)

const maxQueueShown = 12

type architectureSection struct {
	q     *sim.Queue
	table table.Model
	flood key.Binding
}

func newArchitectureSection(e env) section {
	cols := []table.Column{
		{Title: "Worker", Width: 8},
		{Title: "Status", Width: 14},
		{Title: "Event", Width: 8},
	}
	q := sim.NewQueue(e.group, e.cfg.Timings, e.cfg.Queue, e.tracer)
	t := table.New(table.WithColumns(cols), table.WithHeight(len(q.Workers())+1))
	return &architectureSection{
		q:     q,
		table: t,
		flood: binding(fmt.Sprintf("flood %d events", e.cfg.Queue.FloodSize), "f"),
	}
}

func (s *architectureSection) bindings() []key.Binding {
	return []key.Binding{s.flood}
}

func (s *architectureSection) handleKey(msg tea.KeyMsg) {
	if key.Matches(msg, s.flood) {
		s.q.Flood()
	}
}

func (s *architectureSection) view(f viewFrame) string {
	pending := s.q.Pending()
	items := make([]string, 0, maxQueueShown)
	for i, id := range pending {
		if i == maxQueueShown {
			items = append(items, mutedStyle.Render(fmt.Sprintf("+%d", len(pending)-maxQueueShown)))
			break
		}
		items = append(items, fmt.Sprintf("#%d", id))
	}
	queueLine := mutedStyle.Render("empty")
	if len(items) > 0 {
		queueLine = strings.Join(items, " ")
	}
	queue := panelStyle.Render(titleStyle.Render("Queue") + " " +
		warnStyle.Render(fmt.Sprintf("(%d pending)", len(pending))) + "\n" + queueLine)

	rows := make([]table.Row, 0, len(s.q.Workers()))
	for _, w := range s.q.Workers() {
		status, event := "Idle", "-"
		if w.Busy {
			status, event = f.spinner+" Processing...", fmt.Sprintf("#%d", w.Item)
		}
		rows = append(rows, table.Row{fmt.Sprintf("W%d", w.ID), status, event})
	}
	s.table.SetRows(rows)

	db := panelStyle.Render(titleStyle.Render("Database") + "\n" +
		successStyle.Render(fmt.Sprintf("%d events persisted", s.q.Persisted())))

	metrics := mutedStyle.Render("metrics unavailable")
	if snap, err := s.q.Metrics(); err == nil {
		metrics = mutedStyle.Render(fmt.Sprintf("enqueued_total=%.0f persisted_total=%.0f queue_depth=%.0f busy_workers=%.0f",
			snap.Enqueued, snap.Persisted, snap.QueueDepth, snap.BusyWorkers))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"Provider ──▶ Ingest API ──▶ Queue ──▶ Workers ──▶ Database",
		"",
		queue,
		lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(s.table.View()), db),
		metrics,
		controls(s.bindings()...),
	)
}
