package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"vidsync/internal/library"
	"vidsync/internal/media/ffprobe"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List the channel folders and video files found on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}

			probe := ffprobe.New(cfg.Tools.FFprobeBinary, time.Duration(cfg.Tools.ProbeTimeoutSeconds)*time.Second)
			libraries, err := library.NewScanner(probe, logger).Scan(cmd.Context(), cfg.Paths.LibraryDir)
			if err != nil {
				return fmt.Errorf("scan library: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			if len(libraries) == 0 {
				fmt.Fprintf(out, "No channel folders found under %s\n", cfg.Paths.LibraryDir)
				return nil
			}

			channelIDs := make([]string, 0, len(libraries))
			for id := range libraries {
				channelIDs = append(channelIDs, id)
			}
			sort.Strings(channelIDs)

			for _, id := range channelIDs {
				lib := libraries[id]
				fmt.Fprintln(out, renderSectionHeader(fmt.Sprintf("%s [%s]", lib.ChannelName, id), colorize))
				if len(lib.Videos) == 0 {
					fmt.Fprintln(out, "  (no video files)")
					continue
				}
				rows := make([][]string, 0, len(lib.Videos))
				for _, file := range lib.Videos {
					rows = append(rows, []string{file.Filename, file.Title, formatSeconds(file.DurationSeconds)})
				}
				fmt.Fprintln(out, renderTable([]string{"File", "Title", "Duration"}, rows, 2))
			}
			return nil
		},
	}
}
