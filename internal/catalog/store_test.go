package catalog_test

import (
	"context"
	"errors"
	"testing"

	"vidsync/internal/catalog"
	"vidsync/internal/services"
	"vidsync/internal/testsupport"
)

func seedChannel(t *testing.T, store *catalog.Store, id, name string) {
	t.Helper()
	if err := store.SaveChannel(context.Background(), &catalog.Channel{ID: id, Name: name}); err != nil {
		t.Fatalf("SaveChannel: %v", err)
	}
}

func TestSaveAndGetVideo(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	seedChannel(t, store, "UC123", "Tech Channel")

	duration := 634.0
	video := &catalog.Video{
		ID:              "v1",
		ChannelID:       "UC123",
		Title:           "Intro to Rust",
		DurationSeconds: &duration,
	}
	if err := store.SaveVideo(ctx, video); err != nil {
		t.Fatalf("SaveVideo: %v", err)
	}

	got, err := store.GetVideo(ctx, "v1")
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}
	if got == nil {
		t.Fatal("expected video, got nil")
	}
	if got.Title != "Intro to Rust" || got.ChannelID != "UC123" {
		t.Fatalf("unexpected video: %+v", got)
	}
	if got.DurationSeconds == nil || *got.DurationSeconds != 634.0 {
		t.Fatalf("unexpected duration: %v", got.DurationSeconds)
	}
	if got.Downloaded {
		t.Fatal("expected video not downloaded")
	}
}

func TestGetVideoAbsentReturnsNil(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	got, err := store.GetVideo(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown id, got %+v", got)
	}
}

func TestSetDownloaded(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	seedChannel(t, store, "UC123", "Tech Channel")
	testsupport.SeedVideo(t, store, "v1", "UC123", "Intro to Rust")

	if err := store.SetDownloaded(ctx, "v1", "/library/Tech Channel [UC123]/Intro to Rust.mp4"); err != nil {
		t.Fatalf("SetDownloaded: %v", err)
	}

	got, err := store.GetVideo(ctx, "v1")
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}
	if !got.Downloaded {
		t.Fatal("expected downloaded flag set")
	}
	if got.FilePath != "/library/Tech Channel [UC123]/Intro to Rust.mp4" {
		t.Fatalf("unexpected file path: %q", got.FilePath)
	}
}

func TestSetDownloadedUnknownVideo(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	err := store.SetDownloaded(context.Background(), "ghost", "/tmp/x.mp4")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error for unknown video id, got %v", err)
	}
}

func TestSaveVideoPreservesDownloadState(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	seedChannel(t, store, "UC123", "Tech Channel")
	testsupport.SeedVideo(t, store, "v1", "UC123", "Intro to Rust")

	if err := store.SetDownloaded(ctx, "v1", "/library/x.mp4"); err != nil {
		t.Fatalf("SetDownloaded: %v", err)
	}
	// Metadata refresh must not clear download state.
	if err := store.SaveVideo(ctx, &catalog.Video{ID: "v1", ChannelID: "UC123", Title: "Intro to Rust (2024)"}); err != nil {
		t.Fatalf("SaveVideo: %v", err)
	}

	got, err := store.GetVideo(ctx, "v1")
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}
	if got.Title != "Intro to Rust (2024)" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
	if !got.Downloaded || got.FilePath != "/library/x.mp4" {
		t.Fatalf("expected download state preserved, got %+v", got)
	}
}

func TestListChannelVideos(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	seedChannel(t, store, "UC123", "Tech Channel")
	seedChannel(t, store, "UC999", "Other Channel")
	testsupport.SeedVideo(t, store, "v1", "UC123", "B Title")
	testsupport.SeedVideo(t, store, "v2", "UC123", "A Title")
	testsupport.SeedVideo(t, store, "v3", "UC999", "Elsewhere")

	summaries, err := store.ListChannelVideos(ctx, "UC123")
	if err != nil {
		t.Fatalf("ListChannelVideos: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(summaries))
	}
	if summaries[0].Title != "A Title" || summaries[1].Title != "B Title" {
		t.Fatalf("expected title order, got %+v", summaries)
	}
}

func TestDeleteVideo(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()
	seedChannel(t, store, "UC123", "Tech Channel")
	testsupport.SeedVideo(t, store, "v1", "UC123", "Intro to Rust")

	if store.Path() != cfg.Paths.DBPath {
		t.Fatalf("unexpected store path %q", store.Path())
	}

	if err := store.DeleteVideo(ctx, "v1"); err != nil {
		t.Fatalf("DeleteVideo: %v", err)
	}
	got, err := store.GetVideo(ctx, "v1")
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}
	if got != nil {
		t.Fatalf("expected video deleted, got %+v", got)
	}
}

func TestListChannels(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	seedChannel(t, store, "UC2", "Beta")
	seedChannel(t, store, "UC1", "Alpha")

	channels, err := store.ListChannels(context.Background())
	if err != nil {
		t.Fatalf("ListChannels: %v", err)
	}
	if len(channels) != 2 || channels[0].Name != "Alpha" {
		t.Fatalf("unexpected channels: %+v", channels)
	}
}
