package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"webhook-lab/internal/catalog"
	"webhook-lab/internal/config"
	"webhook-lab/internal/logging"
	"webhook-lab/internal/tui"
)

var (
	tuiConfigPath string
	tuiLogFile    string
	tuiWatch      bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive lab (default)",
	Long:  "tui opens the six-tab lab in the terminal. Simulator events can be traced to a JSONL file.",
	RunE:  runTUI,
}

func addTUIFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&tuiConfigPath, "config", "", "Path to lab configuration YAML (env "+config.PathEnv+")")
	cmd.Flags().StringVar(&tuiLogFile, "log-file", "", "Path to export simulator trace events (JSONL)")
	cmd.Flags().BoolVar(&tuiWatch, "watch", false, "Reload the configuration when the file changes")
}

func init() {
	addTUIFlags(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(true, tuiLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	loader, err := config.NewLoader(config.ResolvePath(tuiConfigPath), log)
	if err != nil {
		return err
	}
	writer, cleanup, err := newWriters(nil, tuiLogFile)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.NewContext(ctx, log)

	log.Info("starting lab", "config", loader.Path(), "trace", tuiLogFile, "watch", tuiWatch)
	return tui.Run(ctx, tui.Options{
		Loader:  loader,
		Catalog: catalog.Default(),
		Writer:  writer,
		Logger:  log,
		Watch:   tuiWatch,
	})
}
