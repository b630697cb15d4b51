package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dexrooms/internal/adapter/apiclient"
	"dexrooms/internal/tracker"
)

func watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <campaign-id>",
		Short: "Follow a campaign's funding progress from a running API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			logger := newLogger(cfg)

			client := apiclient.New(cfg.Tracker)
			snapshots := tracker.New(client, args[0], cfg.Tracker, logger).Run(cmd.Context())
			for snap := range snapshots {
				printSnapshot(cmd.OutOrStdout(), snap)
			}
			return nil
		},
	}
}

func printSnapshot(w io.Writer, s tracker.Snapshot) {
	c, d := s.Campaign, s.Derived
	line := fmt.Sprintf("%s %s ($%s) | $%.2f / $%.2f (%.2f%%) | %d contributors | %s | %s",
		s.Now.Format("15:04:05"), c.Name, c.Symbol,
		c.Raised, c.Goal, d.ProgressPercent, c.Contributors, d.TimeLeft, c.Status)
	if d.AverageContribution != nil {
		line += fmt.Sprintf(" | avg $%.2f", *d.AverageContribution)
	}
	fmt.Fprintln(w, line)
}
