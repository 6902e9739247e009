package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"webhook-lab/internal/catalog"
	"webhook-lab/internal/config"
	"webhook-lab/internal/logging"
	"webhook-lab/internal/sim"
)

var (
	demoConfigPath string
	demoLogFile    string
	demoJSON       bool
	demoSpeed      float64
)

var demoCmd = &cobra.Command{
	Use:   "demo <" + strings.Join(sim.Scenarios, "|") + ">",
	Short: "Run a scripted scenario headlessly",
	Long:  "demo plays one simulator through a scripted scenario in real time and prints every trace event.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, _, err := newLogger(false, "")
		if err != nil {
			return err
		}
		cfg, err := config.Load(config.ResolvePath(demoConfigPath))
		if err != nil {
			return err
		}
		writer, cleanup, err := newWriters(sim.NewStdoutWriter(demoJSON), demoLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		tracer := sim.NewTracer(writer, log)
		d, err := sim.NewDemo(args[0], cfg, catalog.Default(), tracer, demoSpeed)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logging.NewContext(ctx, log)
		if err := d.Run(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("demo %s: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoConfigPath, "config", "", "Path to lab configuration YAML (env "+config.PathEnv+")")
	demoCmd.Flags().StringVar(&demoLogFile, "log-file", "", "Path to export simulator trace events (JSONL)")
	demoCmd.Flags().BoolVar(&demoJSON, "json", false, "Print JSON lines even when STDOUT is a terminal")
	demoCmd.Flags().Float64Var(&demoSpeed, "speed", 1.0, "Simulation speed multiplier")
}
