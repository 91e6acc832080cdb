package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"vidsync/internal/catalog"
	"vidsync/internal/workflow"
)

func newReconcileCommand(ctx *commandContext) *cobra.Command {
	var (
		dryRun            bool
		titleThreshold    float64
		durationThreshold float64
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run one reconciliation pass over the local library",
		Long: "Scans the library directory, marks exact title matches as downloaded,\n" +
			"resolves leftover files against each channel's remote listing, and\n" +
			"creates catalog records for videos seen on disk for the first time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title-threshold") {
				cfg.Matching.TitleThreshold = titleThreshold
			}
			if cmd.Flags().Changed("duration-threshold") {
				cfg.Matching.DurationThresholdSeconds = durationThreshold
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			runner, err := workflow.New(cfg, store, logger, workflow.Options{DryRun: dryRun})
			if err != nil {
				return err
			}
			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writePassReport(out, report, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Analyze and resolve without touching the catalog")
	cmd.Flags().Float64Var(&titleThreshold, "title-threshold", 0, "Minimum title similarity for fuzzy matches (0..1)")
	cmd.Flags().Float64Var(&durationThreshold, "duration-threshold", 0, "Maximum duration difference in seconds for fuzzy matches")
	return cmd
}

func writePassReport(out io.Writer, report *workflow.PassReport, colorize bool) {
	title := "Reconciliation Pass"
	if report.DryRun {
		title = "Reconciliation Pass (dry run)"
	}
	fmt.Fprintln(out, renderSectionHeader(title, colorize))
	fmt.Fprintf(out, "  pass %s finished in %s\n\n", report.PassID, report.Duration.Round(timePrecision))

	fmt.Fprintln(out, renderCount("channels", report.ChannelsScanned, false, colorize))
	fmt.Fprintln(out, renderCount("files", report.FilesScanned, false, colorize))
	fmt.Fprintln(out, renderCount("exact matches", report.Reconcile.ExactMatches, false, colorize))
	fmt.Fprintln(out, renderCount("records updated", report.Reconcile.RecordsUpdated, false, colorize))
	fmt.Fprintln(out, renderCount("unknown files", report.Reconcile.UnknownFiles, true, colorize))
	fmt.Fprintln(out, renderCount("resolved", report.Resolved(), false, colorize))
	if !report.DryRun {
		fmt.Fprintln(out, renderCount("created", report.Sync.Created, false, colorize))
		fmt.Fprintln(out, renderCount("updated", report.Sync.Updated, false, colorize))
		fmt.Fprintln(out, renderCount("skipped", report.Sync.Skipped, false, colorize))
		fmt.Fprintln(out, renderCount("failed", report.Sync.Failed, true, colorize))
	}

	if len(report.Resolutions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderSectionHeader("Fuzzy Resolutions", colorize))
		rows := make([][]string, 0, len(report.Resolutions))
		for _, res := range report.Resolutions {
			row := []string{res.File.ChannelName, res.File.Local.Filename}
			if res.Resolved() {
				rows = append(rows, append(row,
					*res.VideoID,
					res.Details.MatchedTitle,
					strconv.FormatFloat(res.Details.CombinedScore, 'f', 3, 64)))
				continue
			}
			rows = append(rows, append(row, "-", res.Details.Reason, "-"))
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Channel", "File", "Video ID", "Match / Reason", "Score"},
			rows, 4))
	}

	if report.Reconcile.UnknownFiles == 0 && report.Sync.Failed == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderOK("Library and catalog are consistent.", colorize))
	}
}
