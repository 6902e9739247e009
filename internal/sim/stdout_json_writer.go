package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONStdoutWriter prints trace events as JSON lines to STDOUT.
type JSONStdoutWriter struct {
	out io.Writer
}

// NewJSONStdoutWriter creates a JSONStdoutWriter writing to os.Stdout.
func NewJSONStdoutWriter() *JSONStdoutWriter {
	return &JSONStdoutWriter{out: os.Stdout}
}

// WriteEvent outputs a trace event in JSON format.
func (w *JSONStdoutWriter) WriteEvent(ev TraceEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.out, string(data))
	return err
}

// WriteEvents outputs multiple trace events in JSON format.
func (w *JSONStdoutWriter) WriteEvents(evs []TraceEvent) error {
	for _, ev := range evs {
		if err := w.WriteEvent(ev); err != nil {
			return err
		}
	}
	return nil
}
