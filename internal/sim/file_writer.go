package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileWriter writes trace events to a JSONL file.
type FileWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewFileWriter creates (or truncates) path and returns a FileWriter.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace log %s: %w", path, err)
	}
	return &FileWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// WriteEvent logs a single trace event.
func (f *FileWriter) WriteEvent(ev TraceEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enc.Encode(ev)
}

// WriteEvents logs multiple trace events.
func (f *FileWriter) WriteEvents(evs []TraceEvent) error {
	for _, ev := range evs {
		if err := f.WriteEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}
