package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"webhook-lab/internal/catalog"
	"webhook-lab/internal/config"
	"webhook-lab/internal/sim"
)

// teaProgram abstracts tea.Program for testing.
type teaProgram interface {
	Send(tea.Msg)
}

// Options configures Run.
type Options struct {
	Loader  *config.Loader
	Catalog *catalog.Catalog
	Writer  sim.EventWriter
	Logger  *slog.Logger
	Watch   bool
}

// Run starts the TUI on the alternate screen and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts.Loader.Config(), opts.Catalog, opts.Writer, opts.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.Watch {
		forwardReloads(opts.Loader, p)
		stop, err := opts.Loader.Watch()
		if err != nil {
			return err
		}
		defer stop()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// forwardReloads delivers every reloaded config to the program as a message.
func forwardReloads(l *config.Loader, p teaProgram) {
	l.OnChange(func(cfg *config.LabConfig) {
		p.Send(configMsg{cfg: cfg})
	})
}
