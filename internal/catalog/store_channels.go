package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SaveChannel inserts or updates a channel record.
func (s *Store) SaveChannel(ctx context.Context, channel *Channel) error {
	if channel == nil || channel.ID == "" {
		return errors.New("save channel: missing id")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO channels (id, name, url, description, video_count, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
             name = excluded.name,
             url = excluded.url,
             description = excluded.description,
             video_count = excluded.video_count,
             updated_at = excluded.updated_at`,
		channel.ID,
		channel.Name,
		nullableString(channel.URL),
		nullableString(channel.Description),
		channel.VideoCount,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("save channel %s: %w", channel.ID, err)
	}
	return nil
}

// GetChannel fetches a channel by id. Returns (nil, nil) when absent.
func (s *Store) GetChannel(ctx context.Context, id string) (*Channel, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, url, description, video_count, created_at, updated_at FROM channels WHERE id = ?", id)

	var (
		channel     Channel
		url         sql.NullString
		description sql.NullString
		createdRaw  sql.NullString
		updatedRaw  sql.NullString
	)
	err := row.Scan(&channel.ID, &channel.Name, &url, &description, &channel.VideoCount, &createdRaw, &updatedRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get channel %s: %w", id, err)
	}
	channel.URL = url.String
	channel.Description = description.String
	if created, err := parseTimeString(createdRaw.String); err == nil {
		channel.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		channel.UpdatedAt = updated
	}
	return &channel, nil
}

// ListChannels returns all channels ordered by name.
func (s *Store) ListChannels(ctx context.Context) ([]Channel, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, url, description, video_count, created_at, updated_at FROM channels ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	defer rows.Close()

	var channels []Channel
	for rows.Next() {
		var (
			channel     Channel
			url         sql.NullString
			description sql.NullString
			createdRaw  sql.NullString
			updatedRaw  sql.NullString
		)
		if err := rows.Scan(&channel.ID, &channel.Name, &url, &description, &channel.VideoCount, &createdRaw, &updatedRaw); err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		channel.URL = url.String
		channel.Description = description.String
		if created, err := parseTimeString(createdRaw.String); err == nil {
			channel.CreatedAt = created
		}
		if updated, err := parseTimeString(updatedRaw.String); err == nil {
			channel.UpdatedAt = updated
		}
		channels = append(channels, channel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate channels: %w", err)
	}
	return channels, nil
}
