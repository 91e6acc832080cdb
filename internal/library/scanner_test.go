package library_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vidsync/internal/library"
)

type fixedProbe struct {
	durations map[string]float64
}

func (p fixedProbe) Duration(_ context.Context, path string) (float64, bool) {
	seconds, ok := p.durations[filepath.Base(path)]
	return seconds, ok
}

func mkFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestScanParsesChannelFolders(t *testing.T) {
	root := t.TempDir()
	mkFiles(t, filepath.Join(root, "Tech_Channel [UC123]"), "Intro to Rust.mp4", "notes.txt")
	mkFiles(t, filepath.Join(root, "Cooking [UC-456]"), "Pasta Night.MKV")
	mkFiles(t, filepath.Join(root, "random folder"), "ignored.mp4")
	mkFiles(t, filepath.Join(root, ".hidden [UC999]"), "skipped.mp4")

	scanner := library.NewScanner(nil, nil)
	libraries, err := scanner.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(libraries) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(libraries))
	}

	tech := libraries["UC123"]
	if tech == nil {
		t.Fatal("expected UC123 channel")
	}
	if tech.ChannelName != "Tech Channel" {
		t.Fatalf("expected underscores converted to spaces, got %q", tech.ChannelName)
	}
	if len(tech.Videos) != 1 {
		t.Fatalf("expected 1 video, got %d", len(tech.Videos))
	}
	file := tech.Videos[0]
	if file.Title != "Intro to Rust" {
		t.Fatalf("unexpected title: %q", file.Title)
	}
	if file.Path != filepath.Join(root, "Tech_Channel [UC123]", "Intro to Rust.mp4") {
		t.Fatalf("unexpected path: %q", file.Path)
	}

	cooking := libraries["UC-456"]
	if cooking == nil || len(cooking.Videos) != 1 {
		t.Fatalf("expected case-insensitive extension match, got %+v", cooking)
	}
}

func TestScanMissingRoot(t *testing.T) {
	scanner := library.NewScanner(nil, nil)
	libraries, err := scanner.Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(libraries) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(libraries))
	}
}

func TestScanRecordsEmptyChannels(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Empty [UCempty]"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	scanner := library.NewScanner(nil, nil)
	libraries, err := scanner.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	lib := libraries["UCempty"]
	if lib == nil {
		t.Fatal("expected empty channel recorded")
	}
	if len(lib.Videos) != 0 {
		t.Fatalf("expected zero videos, got %d", len(lib.Videos))
	}
}

func TestScanProbesDurations(t *testing.T) {
	root := t.TempDir()
	mkFiles(t, filepath.Join(root, "Tech [UC123]"), "known.mp4", "unknown.mp4")

	probe := fixedProbe{durations: map[string]float64{"known.mp4": 321.5}}
	scanner := library.NewScanner(probe, nil)
	libraries, err := scanner.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	videos := libraries["UC123"].Videos
	byName := map[string]library.LocalFile{}
	for _, v := range videos {
		byName[v.Filename] = v
	}
	if d := byName["known.mp4"].DurationSeconds; d == nil || *d != 321.5 {
		t.Fatalf("expected probed duration, got %v", d)
	}
	if d := byName["unknown.mp4"].DurationSeconds; d != nil {
		t.Fatalf("expected nil duration for failed probe, got %v", *d)
	}
}

func TestScanSkipsHiddenFiles(t *testing.T) {
	root := t.TempDir()
	mkFiles(t, filepath.Join(root, "Tech [UC123]"), ".hidden.mp4", "visible.mp4")

	scanner := library.NewScanner(nil, nil)
	libraries, err := scanner.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	videos := libraries["UC123"].Videos
	if len(videos) != 1 || videos[0].Filename != "visible.mp4" {
		t.Fatalf("expected only visible file, got %+v", videos)
	}
}
