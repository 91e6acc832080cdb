package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"vidsync/internal/catalog"
	"vidsync/internal/logging"
	"vidsync/internal/services"
	"vidsync/internal/services/ytdlp"
	"vidsync/internal/textutil"
)

// Catalog is the store surface ingestion needs.
type Catalog interface {
	GetVideo(ctx context.Context, id string) (*catalog.Video, error)
	SaveVideo(ctx context.Context, video *catalog.Video) error
	GetChannel(ctx context.Context, id string) (*catalog.Channel, error)
	SaveChannel(ctx context.Context, channel *catalog.Channel) error
}

// Ingestor fetches remote metadata and persists new catalog records.
type Ingestor struct {
	store   Catalog
	fetcher ytdlp.MetadataFetcher
	logger  *slog.Logger
}

// New constructs an Ingestor.
func New(store Catalog, fetcher ytdlp.MetadataFetcher, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		store:   store,
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "ingest"),
	}
}

// Process ensures a full catalog record exists for videoID and returns it.
// An already-cataloged video is returned as-is. For a new video the full
// metadata is fetched, the owning channel row is created if absent, and the
// record is saved with download state left untouched for the caller to set.
func (i *Ingestor) Process(ctx context.Context, videoID string) (*catalog.Video, error) {
	if videoID == "" {
		return nil, services.Wrap(services.ErrValidation, "ingest", "process", "video id is required", nil)
	}

	existing, err := i.store.GetVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("look up video %s: %w", videoID, err)
	}
	if existing != nil {
		i.logger.Debug("video already cataloged",
			logging.String(logging.FieldVideoID, videoID))
		return existing, nil
	}

	info, err := i.fetcher.FetchVideoInfo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata for %s: %w", videoID, err)
	}

	if err := i.ensureChannel(ctx, info); err != nil {
		return nil, err
	}

	video := &catalog.Video{
		ID:              info.ID,
		ChannelID:       info.ChannelID,
		Title:           info.Title,
		Description:     info.Description,
		DurationSeconds: info.DurationSeconds,
		PublishedAt:     info.UploadDate,
	}
	if err := i.store.SaveVideo(ctx, video); err != nil {
		return nil, fmt.Errorf("save video %s: %w", videoID, err)
	}

	i.logger.Info("video ingested",
		logging.String(logging.FieldVideoID, video.ID),
		logging.String(logging.FieldChannelID, video.ChannelID),
		logging.String("title", video.Title))
	return video, nil
}

// ensureChannel creates the channel row when the catalog has never seen it.
// yt-dlp occasionally omits the channel name on single-video dumps; a
// title-cased form of the id keeps the row presentable until a richer fetch
// replaces it.
func (i *Ingestor) ensureChannel(ctx context.Context, info *ytdlp.VideoInfo) error {
	if info.ChannelID == "" {
		return services.Wrap(services.ErrValidation, "ingest", "ensure channel", "metadata carries no channel id for video "+info.ID, nil)
	}

	channel, err := i.store.GetChannel(ctx, info.ChannelID)
	if err != nil {
		return fmt.Errorf("look up channel %s: %w", info.ChannelID, err)
	}
	if channel != nil {
		return nil
	}

	name := info.ChannelName
	if name == "" {
		name = textutil.TitleCase(info.ChannelID)
	}
	i.logger.Info("creating channel row",
		logging.String(logging.FieldChannelID, info.ChannelID),
		logging.String("name", name))
	if err := i.store.SaveChannel(ctx, &catalog.Channel{
		ID:   info.ChannelID,
		Name: name,
		URL:  info.ChannelURL,
	}); err != nil {
		return fmt.Errorf("save channel %s: %w", info.ChannelID, err)
	}
	return nil
}
