package ffprobe_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vidsync/internal/media/ffprobe"
)

func writeStub(t *testing.T, name, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestDurationParsesOutput(t *testing.T) {
	stub := writeStub(t, "ffprobe", "#!/bin/sh\necho 634.12\n")
	probe := ffprobe.New(stub, 0)

	seconds, ok := probe.Duration(context.Background(), "/tmp/video.mp4")
	if !ok {
		t.Fatal("expected duration to be known")
	}
	if seconds != 634.12 {
		t.Fatalf("unexpected duration: %v", seconds)
	}
}

func TestDurationNonZeroExit(t *testing.T) {
	stub := writeStub(t, "ffprobe", "#!/bin/sh\nexit 1\n")
	probe := ffprobe.New(stub, 0)

	if _, ok := probe.Duration(context.Background(), "/tmp/not-a-video.txt"); ok {
		t.Fatal("expected unknown duration on probe failure")
	}
}

func TestDurationGarbageOutput(t *testing.T) {
	stub := writeStub(t, "ffprobe", "#!/bin/sh\necho N/A\n")
	probe := ffprobe.New(stub, 0)

	if _, ok := probe.Duration(context.Background(), "/tmp/video.mp4"); ok {
		t.Fatal("expected unknown duration for unparsable output")
	}
}

func TestDurationMissingBinary(t *testing.T) {
	probe := ffprobe.New(filepath.Join(t.TempDir(), "no-such-ffprobe"), 0)

	if _, ok := probe.Duration(context.Background(), "/tmp/video.mp4"); ok {
		t.Fatal("expected unknown duration for missing binary")
	}
}

func TestDurationTimeout(t *testing.T) {
	stub := writeStub(t, "ffprobe", "#!/bin/sh\nsleep 5\necho 100\n")
	probe := ffprobe.New(stub, 50*time.Millisecond)

	start := time.Now()
	if _, ok := probe.Duration(context.Background(), "/tmp/video.mp4"); ok {
		t.Fatal("expected unknown duration on timeout")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("probe did not respect timeout, took %v", elapsed)
	}
}

func TestDurationEmptyPath(t *testing.T) {
	probe := ffprobe.New("ffprobe", 0)
	if _, ok := probe.Duration(context.Background(), "  "); ok {
		t.Fatal("expected unknown duration for empty path")
	}
}
