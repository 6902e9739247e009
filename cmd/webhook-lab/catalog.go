package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"webhook-lab/internal/catalog"
	"webhook-lab/internal/inspector"
)

var catalogEvent string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the sample webhook requests",
	Long:  "catalog renders each sample event as the raw HTTP request shown in the Anatomy tab.",
	RunE: func(cmd *cobra.Command, args []string) error {
		events := catalog.Default().Events()
		if catalogEvent != "" {
			ev, ok := catalog.Default().Event(catalogEvent)
			if !ok {
				return fmt.Errorf("unknown event %q", catalogEvent)
			}
			events = []catalog.SampleEvent{ev}
		}
		out := cmd.OutOrStdout()
		for i, ev := range events {
			text, err := inspector.RenderEvent(ev)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "### %s (%s): %s\n%s\n", ev.Name, ev.ID, ev.Description, text)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogEvent, "event", "", "Only print the event with this id")
}
