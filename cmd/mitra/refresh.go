package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/mitra/internal/config"
	"github.com/MikeSquared-Agency/mitra/internal/refresh"
	"github.com/MikeSquared-Agency/mitra/internal/store"
)

func newRefreshCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Run one refresh pass and print what was ingested",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogging(cfg.LogLevel)

			st := store.New()
			orch, err := newOrchestrator(cmd.Context(), cfg, st, nil, slog.Default())
			if err != nil {
				return err
			}
			report, err := orch.TryRun(cmd.Context())
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report, st, quiet)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the summary line")
	return cmd
}

func printReport(w io.Writer, r refresh.Report, st *store.Store, quiet bool) {
	fmt.Fprintf(w, "pass %s: scanned=%d added=%d missing=%d total=%d in %s\n",
		r.PassID, r.Scanned, r.Added, r.Missing, r.Total, r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	if quiet {
		return
	}
	for i, e := range st.Entries() {
		fmt.Fprintf(w, "%3d. %s (%.0f min) %s\n", i+1, e.Item.Title, e.Item.DurationMinutes, e.Item.URL)
	}
}
