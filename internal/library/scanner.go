package library

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"vidsync/internal/logging"
)

// channelFolderPattern matches "<display name> [<channel_id>]" folder names.
var channelFolderPattern = regexp.MustCompile(`^(.+) \[([\w-]+)\]$`)

// videoExtensions are the recognized playable file extensions, lowercase.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".webm": {},
	".m4v":  {},
}

// DurationProber extracts a playback duration from a local media file.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, bool)
}

// Scanner walks a library root and produces per-channel file listings.
type Scanner struct {
	probe  DurationProber
	logger *slog.Logger
}

// NewScanner constructs a Scanner. A nil probe disables duration probing;
// a nil logger discards output.
func NewScanner(probe DurationProber, logger *slog.Logger) *Scanner {
	return &Scanner{
		probe:  probe,
		logger: logging.NewComponentLogger(logger, "scanner"),
	}
}

// Scan enumerates the channel folders under root and catalogs their video
// files. A missing root is reported and yields an empty map, not an error.
// Channels with zero files are still recorded; folders that do not match the
// naming convention are silently skipped.
func (s *Scanner) Scan(ctx context.Context, root string) (map[string]*ChannelLibrary, error) {
	libraries := make(map[string]*ChannelLibrary)

	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("library root does not exist", logging.String("root", root))
			return libraries, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		match := channelFolderPattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		channelName := strings.ReplaceAll(match[1], "_", " ")
		channelID := match[2]
		folder := filepath.Join(root, entry.Name())

		videos, err := s.scanChannelFolder(ctx, folder)
		if err != nil {
			return nil, err
		}

		libraries[channelID] = &ChannelLibrary{
			ChannelID:   channelID,
			ChannelName: channelName,
			Videos:      videos,
		}
	}

	s.logger.Info("library scan complete",
		logging.String("root", root),
		logging.Int("channels", len(libraries)),
		logging.Int("videos", TotalFiles(libraries)))
	return libraries, nil
}

func (s *Scanner) scanChannelFolder(ctx context.Context, folder string) ([]LocalFile, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	var videos []LocalFile
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := videoExtensions[ext]; !ok {
			continue
		}

		path := filepath.Join(folder, entry.Name())
		file := LocalFile{
			Filename: entry.Name(),
			Title:    strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Path:     path,
		}
		if s.probe != nil {
			if seconds, ok := s.probe.Duration(ctx, path); ok {
				file.DurationSeconds = &seconds
			}
		}
		videos = append(videos, file)
	}
	return videos, nil
}
