package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"webhook-lab/internal/quiz"
	"webhook-lab/internal/sim"
)

type quizSection struct {
	engine *quiz.Engine
	tracer *sim.Tracer
	cursor int

	up     key.Binding
	down   key.Binding
	left   key.Binding
	right  key.Binding
	submit key.Binding
	reset  key.Binding
}

func newQuizSection(e env) section {
	return &quizSection{
		engine: quiz.New(e.catalog.Questions()),
		tracer: e.tracer,
		up:     binding("previous question", "up", "k"),
		down:   binding("next question", "down", "j"),
		left:   binding("previous option", "left", "h"),
		right:  binding("next option", "right", "l"),
		submit: binding("submit", "enter"),
		reset:  binding("reset", "r"),
	}
}

func (s *quizSection) bindings() []key.Binding {
	open := !s.engine.Submitted()
	s.up.SetEnabled(open)
	s.down.SetEnabled(open)
	s.left.SetEnabled(open)
	s.right.SetEnabled(open)
	s.submit.SetEnabled(s.engine.CanSubmit())
	s.reset.SetEnabled(!open)
	if open {
		return []key.Binding{s.up, s.down, s.left, s.right, s.submit}
	}
	return []key.Binding{s.reset}
}

func (s *quizSection) handleKey(msg tea.KeyMsg) {
	s.bindings()
	questions := s.engine.Questions()
	switch {
	case key.Matches(msg, s.up):
		s.cursor = (s.cursor - 1 + len(questions)) % len(questions)
	case key.Matches(msg, s.down):
		s.cursor = (s.cursor + 1) % len(questions)
	case key.Matches(msg, s.left):
		s.move(-1)
	case key.Matches(msg, s.right):
		s.move(1)
	case key.Matches(msg, s.submit):
		if err := s.engine.Submit(); err == nil {
			s.tracer.Emit(sim.SimQuiz, "submit", fmt.Sprintf("Score %d/%d", s.engine.Score(), s.engine.Total()), sim.SeverityInfo)
		}
	case key.Matches(msg, s.reset):
		s.engine.Reset()
		s.cursor = 0
		s.tracer.Emit(sim.SimQuiz, "reset", "", sim.SeverityInfo)
	}
}

func (s *quizSection) move(delta int) {
	q := s.engine.Questions()[s.cursor]
	opt, ok := s.engine.Answer(q.ID)
	switch {
	case !ok && delta > 0:
		opt = 0
	case !ok:
		opt = len(q.Options) - 1
	default:
		opt = (opt + delta + len(q.Options)) % len(q.Options)
	}
	if s.engine.Select(q.ID, opt) {
		s.tracer.Emit(sim.SimQuiz, "answer", fmt.Sprintf("Q%d: %s", q.ID, q.Options[opt]), sim.SeverityInfo)
	}
}

func (s *quizSection) view(f viewFrame) string {
	width := f.width - 6
	if width < 40 {
		width = 40
	}
	if s.engine.Submitted() {
		return s.review(width)
	}
	var b strings.Builder
	for i, q := range s.engine.Questions() {
		prompt := fmt.Sprintf("%d. %s", i+1, q.Prompt)
		style := panelStyle
		if i == s.cursor {
			style = activePanel
			prompt = titleStyle.Render(prompt)
		}
		chosen, answered := s.engine.Answer(q.ID)
		opts := make([]string, len(q.Options))
		for j, o := range q.Options {
			if answered && j == chosen {
				opts[j] = accentStyle.Render("(•) " + o)
			} else {
				opts[j] = "( ) " + o
			}
		}
		b.WriteString(style.Width(width).Render(wordwrap.String(prompt, width)+"\n"+strings.Join(opts, "   ")) + "\n")
	}
	progress := fmt.Sprintf("Answered %d/%d", s.engine.Answered(), s.engine.Total())
	return lipgloss.JoinVertical(lipgloss.Left, b.String(), mutedStyle.Render(progress), controls(s.bindings()...))
}

func (s *quizSection) review(width int) string {
	var b strings.Builder
	verdict := warnStyle
	if s.engine.Score() == s.engine.Total() {
		verdict = successStyle
	}
	b.WriteString(verdict.Render(s.engine.Verdict()) + "\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Score: %d/%d", s.engine.Score(), s.engine.Total())) + "\n\n")
	for _, item := range s.engine.Review() {
		mark := successStyle.Render("✓")
		if !item.Correct {
			mark = errorStyle.Render("✗")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, item.Prompt))
		b.WriteString("  Your answer: " + item.Chosen + "\n")
		if !item.Correct {
			b.WriteString("  Correct answer: " + successStyle.Render(item.Answer) + "\n")
		}
		b.WriteString(mutedStyle.Render(wordwrap.String("  "+item.Explanation, width)) + "\n\n")
	}
	b.WriteString(controls(s.bindings()...))
	return b.String()
}
