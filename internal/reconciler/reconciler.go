package reconciler

import (
	"context"
	"log/slog"
	"sort"

	"vidsync/internal/catalog"
	"vidsync/internal/library"
	"vidsync/internal/logging"
)

// Catalog is the narrow catalog surface the reconciler consumes.
type Catalog interface {
	ListChannelVideos(ctx context.Context, channelID string) ([]catalog.VideoSummary, error)
	SetDownloaded(ctx context.Context, id, filePath string) error
}

// Reconciler matches local files against catalog records by exact title.
type Reconciler struct {
	store  Catalog
	logger *slog.Logger
}

// New constructs a Reconciler. A nil logger discards output.
func New(store Catalog, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logging.NewComponentLogger(logger, "reconciler"),
	}
}

// Analyze partitions every local file into exact matches and unknowns without
// touching the catalog's state. Channels are processed in sorted id order for
// deterministic output. A channel with no catalog videos marks all of its
// files unknown.
func (r *Reconciler) Analyze(ctx context.Context, libraries map[string]*library.ChannelLibrary) (*Analysis, error) {
	analysis := &Analysis{}

	channelIDs := make([]string, 0, len(libraries))
	for id := range libraries {
		channelIDs = append(channelIDs, id)
	}
	sort.Strings(channelIDs)

	for _, channelID := range channelIDs {
		lib := libraries[channelID]
		analysis.TotalFiles += len(lib.Videos)

		known, err := r.store.ListChannelVideos(ctx, channelID)
		if err != nil {
			return nil, err
		}
		if len(known) == 0 {
			for _, file := range lib.Videos {
				analysis.UnknownFiles = append(analysis.UnknownFiles, UnknownFile{
					ChannelID:   channelID,
					ChannelName: lib.ChannelName,
					Local:       file,
				})
			}
			continue
		}

		byTitle := make(map[string]catalog.VideoSummary, len(known))
		for _, summary := range known {
			byTitle[summary.Title] = summary
		}

		for _, file := range lib.Videos {
			summary, ok := byTitle[file.Title]
			if !ok {
				analysis.UnknownFiles = append(analysis.UnknownFiles, UnknownFile{
					ChannelID:   channelID,
					ChannelName: lib.ChannelName,
					Local:       file,
				})
				continue
			}
			analysis.ExactMatches = append(analysis.ExactMatches, ExactMatch{
				ChannelID:   channelID,
				ChannelName: lib.ChannelName,
				Local:       file,
				VideoID:     summary.ID,
				Title:       summary.Title,
				NeedsUpdate: !summary.Downloaded || summary.FilePath != file.Path,
			})
		}
	}

	r.logger.Info("exact match analysis complete",
		logging.Int("total_files", analysis.TotalFiles),
		logging.Int("exact_matches", len(analysis.ExactMatches)),
		logging.Int("unknown_files", len(analysis.UnknownFiles)))
	return analysis, nil
}

// Apply issues the download-status update for every match flagged
// NeedsUpdate. A failed update is logged and counted as not updated; it never
// halts the remaining matches.
func (r *Reconciler) Apply(ctx context.Context, analysis *Analysis) *Outcome {
	outcome := &Outcome{
		ExactMatches: analysis.ExactMatches,
		UnknownFiles: analysis.UnknownFiles,
	}

	for i := range outcome.ExactMatches {
		match := &outcome.ExactMatches[i]
		if !match.NeedsUpdate {
			continue
		}
		if err := r.store.SetDownloaded(ctx, match.VideoID, match.Local.Path); err != nil {
			r.logger.Warn("download status update failed",
				logging.String(logging.FieldVideoID, match.VideoID),
				logging.String(logging.FieldChannelID, match.ChannelID),
				logging.Error(err))
			continue
		}
		match.Updated = true
		outcome.UpdatedRecords = append(outcome.UpdatedRecords, UpdatedRecord{
			VideoID:  match.VideoID,
			Title:    match.Title,
			FilePath: match.Local.Path,
		})
	}

	outcome.Stats = Stats{
		TotalFiles:     analysis.TotalFiles,
		ExactMatches:   len(outcome.ExactMatches),
		UnknownFiles:   len(outcome.UnknownFiles),
		RecordsUpdated: len(outcome.UpdatedRecords),
	}

	r.logger.Info("exact match reconcile complete",
		logging.Int("total_files", outcome.Stats.TotalFiles),
		logging.Int("exact_matches", outcome.Stats.ExactMatches),
		logging.Int("unknown_files", outcome.Stats.UnknownFiles),
		logging.Int("records_updated", outcome.Stats.RecordsUpdated))
	return outcome
}

// Reconcile runs both phases.
func (r *Reconciler) Reconcile(ctx context.Context, libraries map[string]*library.ChannelLibrary) (*Outcome, error) {
	analysis, err := r.Analyze(ctx, libraries)
	if err != nil {
		return nil, err
	}
	return r.Apply(ctx, analysis), nil
}
