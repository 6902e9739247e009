package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "webhook-lab",
	Short: "Interactive webhook teaching lab",
	Long: "webhook-lab explains webhooks versus polling with simulated deliveries, " +
		"a request inspector, a security receiver, a queue/worker pipeline and a quiz.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addTUIFlags(rootCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(replayCmd)
}
