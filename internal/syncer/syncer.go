package syncer

import (
	"context"
	"log/slog"

	"vidsync/internal/catalog"
	"vidsync/internal/logging"
	"vidsync/internal/resolver"
)

// Catalog is the store surface synchronization needs.
type Catalog interface {
	GetVideo(ctx context.Context, id string) (*catalog.Video, error)
	SetDownloaded(ctx context.Context, id, filePath string) error
}

// Ingestor creates a full catalog record for a video id.
type Ingestor interface {
	Process(ctx context.Context, videoID string) (*catalog.Video, error)
}

// Stats aggregates counts for one sync run.
type Stats struct {
	Created int
	Updated int
	Skipped int
	Failed  int
}

// Syncer applies resolved identities to the catalog.
type Syncer struct {
	store    Catalog
	ingestor Ingestor
	logger   *slog.Logger
}

// New constructs a Syncer.
func New(store Catalog, ingestor Ingestor, logger *slog.Logger) *Syncer {
	return &Syncer{
		store:    store,
		ingestor: ingestor,
		logger:   logging.NewComponentLogger(logger, "syncer"),
	}
}

// Sync persists each resolved file's download state. A record already
// downloaded at the same path is skipped; a known record with stale state is
// updated; an unknown id is ingested first, then marked downloaded. Failures
// are counted per file and never stop the loop. Unresolved files are
// ignored entirely so no speculative catalog entries appear.
func (s *Syncer) Sync(ctx context.Context, resolved []resolver.Resolution) Stats {
	var stats Stats

	for _, resolution := range resolved {
		if !resolution.Resolved() {
			continue
		}
		videoID := *resolution.VideoID
		path := resolution.File.Local.Path

		outcome, err := s.syncOne(ctx, videoID, path)
		if err != nil {
			stats.Failed++
			s.logger.Warn("sync failed for file",
				logging.String(logging.FieldVideoID, videoID),
				logging.String(logging.FieldChannelID, resolution.File.ChannelID),
				logging.String("path", path),
				logging.Error(err))
			continue
		}
		switch outcome {
		case outcomeCreated:
			stats.Created++
		case outcomeUpdated:
			stats.Updated++
		case outcomeSkipped:
			stats.Skipped++
		}
	}

	s.logger.Info("catalog sync complete",
		logging.Int("created", stats.Created),
		logging.Int("updated", stats.Updated),
		logging.Int("skipped", stats.Skipped),
		logging.Int("failed", stats.Failed))
	return stats
}

type syncOutcome int

const (
	outcomeCreated syncOutcome = iota
	outcomeUpdated
	outcomeSkipped
)

func (s *Syncer) syncOne(ctx context.Context, videoID, path string) (syncOutcome, error) {
	video, err := s.store.GetVideo(ctx, videoID)
	if err != nil {
		return 0, err
	}

	if video == nil {
		if _, err := s.ingestor.Process(ctx, videoID); err != nil {
			return 0, err
		}
		if err := s.store.SetDownloaded(ctx, videoID, path); err != nil {
			return 0, err
		}
		return outcomeCreated, nil
	}

	if video.Downloaded && video.FilePath == path {
		return outcomeSkipped, nil
	}

	if err := s.store.SetDownloaded(ctx, videoID, path); err != nil {
		return 0, err
	}
	return outcomeUpdated, nil
}
