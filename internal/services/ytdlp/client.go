package ytdlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"vidsync/internal/services"
)

// RemoteVideo is one entry of a channel's remote video listing.
type RemoteVideo struct {
	ID              string
	Title           string
	DurationSeconds *float64
}

// VideoInfo is the full metadata payload for a single video.
type VideoInfo struct {
	ID              string
	Title           string
	Description     string
	DurationSeconds *float64
	UploadDate      string
	ChannelID       string
	ChannelName     string
	ChannelURL      string
}

// Lister fetches a channel's canonical remote video listing.
type Lister interface {
	ListChannelVideos(ctx context.Context, channelID string) ([]RemoteVideo, error)
}

// MetadataFetcher fetches full metadata for a single video.
type MetadataFetcher interface {
	FetchVideoInfo(ctx context.Context, videoID string) (*VideoInfo, error)
}

// Client wraps yt-dlp CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
}

var _ Lister = (*Client)(nil)
var _ MetadataFetcher = (*Client)(nil)

// New constructs a yt-dlp client. The timeout bounds each invocation; zero
// disables the bound and defers to the caller's context.
func New(binary string, timeout time.Duration) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("yt-dlp binary required")
	}
	return &Client{binary: binary, timeout: timeout}, nil
}

type flatPlaylist struct {
	Entries []flatEntry `json:"entries"`
}

type flatEntry struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Duration *float64 `json:"duration"`
}

// ListChannelVideos dumps the channel's video tab as a flat playlist and
// returns its entries in listing order. Entries without an id are dropped.
func (c *Client) ListChannelVideos(ctx context.Context, channelID string) ([]RemoteVideo, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, services.Wrap(services.ErrValidation, "ytdlp", "list channel", "empty channel id", nil)
	}

	url := fmt.Sprintf("https://www.youtube.com/channel/%s/videos", channelID)
	output, err := c.run(ctx, "--flat-playlist", "--dump-single-json", "--no-warnings", url)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "ytdlp", "list channel", channelID, err)
	}

	var playlist flatPlaylist
	if err := json.Unmarshal(output, &playlist); err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "ytdlp", "parse channel listing", channelID, err)
	}

	videos := make([]RemoteVideo, 0, len(playlist.Entries))
	for _, entry := range playlist.Entries {
		if entry.ID == "" {
			continue
		}
		videos = append(videos, RemoteVideo{
			ID:              entry.ID,
			Title:           entry.Title,
			DurationSeconds: entry.Duration,
		})
	}
	return videos, nil
}

type videoPayload struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    *float64 `json:"duration"`
	UploadDate  string   `json:"upload_date"`
	ChannelID   string   `json:"channel_id"`
	Channel     string   `json:"channel"`
	ChannelURL  string   `json:"channel_url"`
}

// FetchVideoInfo dumps full metadata for one video without downloading media.
func (c *Client) FetchVideoInfo(ctx context.Context, videoID string) (*VideoInfo, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, services.Wrap(services.ErrValidation, "ytdlp", "fetch video", "empty video id", nil)
	}

	url := "https://www.youtube.com/watch?v=" + videoID
	output, err := c.run(ctx, "--dump-single-json", "--skip-download", "--no-warnings", url)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "ytdlp", "fetch video", videoID, err)
	}

	var payload videoPayload
	if err := json.Unmarshal(output, &payload); err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "ytdlp", "parse video metadata", videoID, err)
	}
	if payload.ID == "" {
		return nil, services.Wrap(services.ErrExternalTool, "ytdlp", "fetch video", videoID+": empty payload", nil)
	}

	return &VideoInfo{
		ID:              payload.ID,
		Title:           payload.Title,
		Description:     payload.Description,
		DurationSeconds: payload.Duration,
		UploadDate:      payload.UploadDate,
		ChannelID:       payload.ChannelID,
		ChannelName:     payload.Channel,
		ChannelURL:      payload.ChannelURL,
	}, nil
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.binary, args...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: yt-dlp exceeded %s", services.ErrTimeout, c.timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return output, nil
}
