package testsupport

import (
	"context"
	"testing"

	"vidsync/internal/catalog"
	"vidsync/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedVideo inserts a minimal video row for tests using the provided store.
func SeedVideo(t testing.TB, store *catalog.Store, id, channelID, title string) {
	t.Helper()

	video := &catalog.Video{
		ID:        id,
		ChannelID: channelID,
		Title:     title,
	}
	if err := store.SaveVideo(context.Background(), video); err != nil {
		t.Fatalf("store.SaveVideo: %v", err)
	}
}
