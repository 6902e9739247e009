// ColorStdoutWriter prints human-friendly, colorized trace events to STDOUT.
package sim

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

var simulatorPalette = []string{colorBlue, colorMagenta, colorCyan, colorYellow, colorGreen, colorRed}

// ColorStdoutWriter prints trace events using ANSI colors.
type ColorStdoutWriter struct {
	out       io.Writer
	mu        sync.Mutex
	simColors map[string]string
	colorIdx  int
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter() *ColorStdoutWriter {
	return &ColorStdoutWriter{out: os.Stdout, simColors: make(map[string]string)}
}

func (w *ColorStdoutWriter) simulatorColor(name string) string {
	if c, ok := w.simColors[name]; ok {
		return c
	}
	c := simulatorPalette[w.colorIdx%len(simulatorPalette)]
	w.simColors[name] = c
	w.colorIdx++
	return c
}

func severityColor(s Severity) string {
	switch s {
	case SeveritySuccess:
		return colorGreen
	case SeverityError:
		return colorRed
	default:
		return colorReset
	}
}

// WriteEvent outputs a single trace event in colorized format.
func (w *ColorStdoutWriter) WriteEvent(ev TraceEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	simColor := w.simulatorColor(ev.Simulator)
	_, err := fmt.Fprintf(w.out, "%s[%s]%s %s%-9s%s %s%-10s%s %s%s%s\n",
		colorGray, ev.Timestamp.Format(time.TimeOnly), colorReset,
		simColor, ev.Simulator, colorReset,
		colorGray, ev.Kind, colorReset,
		severityColor(ev.Severity), ev.Message, colorReset)
	return err
}

// WriteEvents outputs multiple trace events in colorized format.
func (w *ColorStdoutWriter) WriteEvents(evs []TraceEvent) error {
	for _, ev := range evs {
		if err := w.WriteEvent(ev); err != nil {
			return err
		}
	}
	return nil
}
