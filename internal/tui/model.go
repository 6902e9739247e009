// Package tui is the interactive webhook lab: a tab shell mounting one
// simulator section at a time.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"webhook-lab/internal/catalog"
	"webhook-lab/internal/config"
	"webhook-lab/internal/sched"
	"webhook-lab/internal/sim"
)

// maxFrameStep caps the virtual time a single frame may advance.
const maxFrameStep = time.Second

// frameMsg drives the mounted section's scheduler.
type frameMsg time.Time

// configMsg delivers a reloaded configuration. It applies from the next mount.
type configMsg struct{ cfg *config.LabConfig }

// Model is the navigation shell.
type Model struct {
	cfg     *config.LabConfig
	catalog *catalog.Catalog
	writer  sim.EventWriter
	log     *slog.Logger

	active  int
	sched   *sched.Scheduler
	group   *sched.Group
	section section
	last    time.Time

	keys     globalKeys
	help     help.Model
	spinner  spinner.Model
	showHelp bool
	notice   string
	width    int
	height   int
}

// New builds the shell with the first tab mounted. writer may be nil.
func New(cfg *config.LabConfig, cat *catalog.Catalog, writer sim.EventWriter, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m := Model{
		cfg:     cfg,
		catalog: cat,
		writer:  writer,
		log:     log,
		keys:    newGlobalKeys(),
		help:    help.New(),
		spinner: sp,
		width:   100,
	}
	m.mount(0)
	return m
}

func (m *Model) mount(i int) {
	if m.group != nil {
		m.group.Stop()
	}
	m.active = i
	m.sched = sched.New()
	m.group = m.sched.NewGroup()
	tracer := sim.NewTracer(m.writer, m.log)
	m.section = tabs[i].build(env{group: m.group, cfg: m.cfg, catalog: m.catalog, tracer: tracer})
	m.log.Debug("section mounted", "tab", tabs[i].title, "session", tracer.Session())
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.cfg.Timings.TUIFrame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the frame and spinner ticks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.frameCmd(), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case frameMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			elapsed := now.Sub(m.last)
			if elapsed > maxFrameStep {
				elapsed = maxFrameStep
			}
			if elapsed > 0 {
				m.sched.Advance(elapsed)
			}
		}
		m.last = now
		return m, m.frameCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case configMsg:
		m.cfg = msg.cfg
		m.notice = "config reloaded"
		m.log.Info("config applied", "next_mount", tabs[m.active].title)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.group.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.mount((m.active + 1) % len(tabs))
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.mount((m.active - 1 + len(tabs)) % len(tabs))
		return m, nil
	case key.Matches(msg, m.keys.Tabs):
		m.mount(int(msg.Runes[0] - '1'))
		return m, nil
	}
	m.section.handleKey(msg)
	return m, nil
}

// Active returns the index of the mounted tab.
func (m Model) Active() int { return m.active }

// View implements tea.Model.
func (m Model) View() string {
	titles := make([]string, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("%d %s", i+1, t.title)
		if i == m.active {
			titles[i] = activeTabStyle.Render(label)
		} else {
			titles[i] = tabStyle.Render(label)
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("Webhook Lab")+"  ",
		strings.Join(titles, ""),
	)
	body := m.section.view(viewFrame{width: m.width, height: m.height, spinner: m.spinner.View()})

	m.keys.section = m.section.bindings()
	m.help.ShowAll = m.showHelp
	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer += "  " + mutedStyle.Render(m.notice)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}
