package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"vidsync/internal/logging"
	"vidsync/internal/reconciler"
	"vidsync/internal/services"
	"vidsync/internal/services/ytdlp"
	"vidsync/internal/textutil"
)

const (
	titleWeight    = 0.8
	durationWeight = 0.2
)

// Resolver scores unknown local files against remote channel listings.
type Resolver struct {
	lister            ytdlp.Lister
	titleThreshold    float64
	durationThreshold float64
	logger            *slog.Logger
}

// New constructs a Resolver. titleThreshold is the minimum similarity a
// candidate title must reach; durationThreshold is the maximum tolerated
// duration difference in seconds when both durations are known.
func New(lister ytdlp.Lister, titleThreshold, durationThreshold float64, logger *slog.Logger) *Resolver {
	return &Resolver{
		lister:            lister,
		titleThreshold:    titleThreshold,
		durationThreshold: durationThreshold,
		logger:            logging.NewComponentLogger(logger, "resolver"),
	}
}

// Resolve identifies each unknown file against its channel's remote listing.
// The listing is fetched once per channel; a fetch failure or empty listing
// marks that channel's files unresolved and the remaining channels continue.
// Channels resolve in sorted id order, files in their scanned order.
func (r *Resolver) Resolve(ctx context.Context, unknown []reconciler.UnknownFile) []Resolution {
	byChannel := make(map[string][]reconciler.UnknownFile)
	for _, file := range unknown {
		byChannel[file.ChannelID] = append(byChannel[file.ChannelID], file)
	}

	channelIDs := make([]string, 0, len(byChannel))
	for id := range byChannel {
		channelIDs = append(channelIDs, id)
	}
	sort.Strings(channelIDs)

	resolutions := make([]Resolution, 0, len(unknown))
	resolved := 0
	for _, channelID := range channelIDs {
		files := byChannel[channelID]
		channelCtx := services.WithChannelID(ctx, channelID)
		logger := logging.WithContext(channelCtx, r.logger)

		listing, err := r.lister.ListChannelVideos(channelCtx, channelID)
		if err != nil {
			logger.Warn("remote listing fetch failed", logging.Error(err))
			resolutions = append(resolutions, unresolvedAll(files, fmt.Sprintf("remote listing fetch failed: %v", err))...)
			continue
		}
		if len(listing) == 0 {
			logger.Warn("remote listing empty")
			resolutions = append(resolutions, unresolvedAll(files, "remote listing empty")...)
			continue
		}

		for _, file := range files {
			resolution := r.resolveFile(file, listing)
			if resolution.Resolved() {
				resolved++
				logger.Debug("fuzzy match found",
					logging.String(logging.FieldVideoID, *resolution.VideoID),
					logging.String("local_title", file.Local.Title),
					logging.String("matched_title", resolution.Details.MatchedTitle),
					logging.Float64("score", resolution.Details.CombinedScore))
			}
			resolutions = append(resolutions, resolution)
		}
	}

	r.logger.Info("fuzzy resolution complete",
		logging.Int("unknown_files", len(unknown)),
		logging.Int("resolved", resolved),
		logging.Int("unresolved", len(unknown)-resolved))
	return resolutions
}

// resolveFile scores every listing candidate and keeps the strictly highest
// score; ties keep the first candidate in listing order.
func (r *Resolver) resolveFile(file reconciler.UnknownFile, listing []ytdlp.RemoteVideo) Resolution {
	var (
		found bool
		best  Resolution
	)

	for _, candidate := range listing {
		similarity := textutil.Ratio(file.Local.Title, candidate.Title)
		if similarity < r.titleThreshold {
			continue
		}

		var (
			diff  *float64
			score float64
		)
		if file.Local.DurationSeconds != nil && candidate.DurationSeconds != nil {
			d := *file.Local.DurationSeconds - *candidate.DurationSeconds
			if d < 0 {
				d = -d
			}
			if d > r.durationThreshold {
				continue
			}
			diff = &d
			score = titleWeight*similarity + durationWeight*max(0, 1-d/r.durationThreshold)
		} else {
			// Unknown durations get the benefit of the doubt: no gate,
			// and the score is pure title similarity rather than a
			// penalized weighted sum.
			score = similarity
		}

		if found && score <= best.Details.CombinedScore {
			continue
		}
		found = true
		id := candidate.ID
		best = Resolution{
			File:    file,
			VideoID: &id,
			Details: MatchDetails{
				TitleSimilarity: similarity,
				DurationDiff:    diff,
				CombinedScore:   score,
				MatchedTitle:    candidate.Title,
				MatchedDuration: candidate.DurationSeconds,
			},
		}
	}

	if !found {
		return Resolution{
			File: file,
			Details: MatchDetails{
				Reason: fmt.Sprintf("no candidate reached title threshold %.2f within %.1fs duration", r.titleThreshold, r.durationThreshold),
			},
		}
	}
	return best
}

func unresolvedAll(files []reconciler.UnknownFile, reason string) []Resolution {
	out := make([]Resolution, 0, len(files))
	for _, file := range files {
		out = append(out, Resolution{File: file, Details: MatchDetails{Reason: reason}})
	}
	return out
}
