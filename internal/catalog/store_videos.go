package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vidsync/internal/services"
)

const videoColumns = "id, channel_id, title, description, duration_seconds, published_at, downloaded, file_path, created_at, updated_at"

// SaveVideo inserts or replaces a full video record. Download state is
// preserved across updates of the same id so refreshing metadata never loses
// the downloaded flag.
func (s *Store) SaveVideo(ctx context.Context, video *Video) error {
	if video == nil || video.ID == "" {
		return errors.New("save video: missing id")
	}
	if video.ChannelID == "" {
		return fmt.Errorf("save video %s: missing channel id", video.ID)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO videos (id, channel_id, title, description, duration_seconds, published_at, downloaded, file_path, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
             channel_id = excluded.channel_id,
             title = excluded.title,
             description = excluded.description,
             duration_seconds = excluded.duration_seconds,
             published_at = excluded.published_at,
             updated_at = excluded.updated_at`,
		video.ID,
		video.ChannelID,
		video.Title,
		nullableString(video.Description),
		nullableFloat(video.DurationSeconds),
		nullableString(video.PublishedAt),
		boolToInt(video.Downloaded),
		nullableString(video.FilePath),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("save video %s: %w", video.ID, err)
	}
	return nil
}

// GetVideo fetches a video record by id. Returns (nil, nil) when the id is
// unknown to the catalog.
func (s *Store) GetVideo(ctx context.Context, id string) (*Video, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+videoColumns+" FROM videos WHERE id = ?", id)
	video, err := scanVideo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get video %s: %w", id, err)
	}
	return video, nil
}

// ListChannelVideos returns every catalog video in the channel, in title
// order, projected down to identity and download state.
func (s *Store) ListChannelVideos(ctx context.Context, channelID string) ([]VideoSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, downloaded, file_path FROM videos WHERE channel_id = ? ORDER BY title", channelID)
	if err != nil {
		return nil, fmt.Errorf("list channel videos %s: %w", channelID, err)
	}
	defer rows.Close()

	var summaries []VideoSummary
	for rows.Next() {
		var (
			summary    VideoSummary
			downloaded int
			filePath   sql.NullString
		)
		if err := rows.Scan(&summary.ID, &summary.Title, &downloaded, &filePath); err != nil {
			return nil, fmt.Errorf("scan channel video: %w", err)
		}
		summary.Downloaded = downloaded != 0
		summary.FilePath = filePath.String
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate channel videos: %w", err)
	}
	return summaries, nil
}

// SetDownloaded marks a video downloaded at the given local path. Errors when
// the id is unknown so callers can distinguish a drifted record from a
// missing one.
func (s *Store) SetDownloaded(ctx context.Context, id, filePath string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE videos SET downloaded = 1, file_path = ?, updated_at = ? WHERE id = ?",
		filePath,
		time.Now().UTC().Format(time.RFC3339Nano),
		id,
	)
	if err != nil {
		return fmt.Errorf("set downloaded %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set downloaded %s: rows affected: %w", id, err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "catalog", "set downloaded", "video "+id, nil)
	}
	return nil
}

// DeleteVideo removes a video record.
func (s *Store) DeleteVideo(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM videos WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete video %s: %w", id, err)
	}
	return nil
}

func scanVideo(scanner interface{ Scan(dest ...any) error }) (*Video, error) {
	var (
		id          string
		channelID   string
		title       string
		description sql.NullString
		duration    sql.NullFloat64
		publishedAt sql.NullString
		downloaded  int
		filePath    sql.NullString
		createdRaw  sql.NullString
		updatedRaw  sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&channelID,
		&title,
		&description,
		&duration,
		&publishedAt,
		&downloaded,
		&filePath,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	video := &Video{
		ID:          id,
		ChannelID:   channelID,
		Title:       title,
		Description: description.String,
		PublishedAt: publishedAt.String,
		Downloaded:  downloaded != 0,
		FilePath:    filePath.String,
	}
	if duration.Valid {
		v := duration.Float64
		video.DurationSeconds = &v
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		video.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		video.UpdatedAt = updated
	}
	return video, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty time")
	}
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}
