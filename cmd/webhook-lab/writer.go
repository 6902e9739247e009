package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"webhook-lab/internal/logging"
	"webhook-lab/internal/sim"
)

// newWriters combines the base trace writer with an optional JSONL log file.
// base may be nil. The returned writer is nil when there is nothing to write
// to; cleanup closes any opened file.
func newWriters(base sim.EventWriter, logFile string) (sim.EventWriter, func(), error) {
	cleanup := func() {}
	if logFile == "" {
		return base, cleanup, nil
	}
	fw, err := sim.NewFileWriter(logFile)
	if err != nil {
		return nil, nil, err
	}
	cleanup = func() { fw.Close() }
	if base == nil {
		return fw, cleanup, nil
	}
	return sim.NewMultiWriter(base, fw), cleanup, nil
}

// newLogger builds the process logger. Interactive sessions own the terminal,
// so their logs go next to the trace file, or nowhere.
func newLogger(interactive bool, logFile string) (*slog.Logger, func(), error) {
	level := logging.LevelFromEnv()
	if !interactive {
		return logging.New(os.Stderr, level), func() {}, nil
	}
	if logFile == "" {
		return logging.New(io.Discard, level), func() {}, nil
	}
	f, err := os.OpenFile(logFile+".log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s.log: %w", logFile, err)
	}
	return logging.New(f, level), func() { f.Close() }, nil
}
