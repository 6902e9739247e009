package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"webhook-lab/internal/logging"
	"webhook-lab/internal/sim"
)

var (
	replayInput string
	replaySpeed float64
	replayJSON  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a trace log file",
	Long:  "replay prints trace events from a JSONL log with their original spacing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		log, _, err := newLogger(false, "")
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logging.NewContext(ctx, log)
		if err := sim.ReplayLogFile(ctx, replayInput, sim.NewStdoutWriter(replayJSON), replaySpeed); err != nil && ctx.Err() == nil {
			return fmt.Errorf("replay %s: %w", replayInput, err)
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to trace log file")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Print JSON lines even when STDOUT is a terminal")
	replayCmd.MarkFlagRequired("input")
}
