package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanEmptyLibrary(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"scan"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "No channel folders found")
}

func TestScanListsChannelFiles(t *testing.T) {
	env := setupCLITestEnv(t)

	channelDir := filepath.Join(env.libraryDir, "Tech Channel [UC123]")
	if err := os.MkdirAll(channelDir, 0o755); err != nil {
		t.Fatalf("mkdir channel: %v", err)
	}
	if err := os.WriteFile(filepath.Join(channelDir, "Intro to Rust.mp4"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write video: %v", err)
	}

	out, err := runCLI(t, []string{"scan"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "Tech Channel [UC123]")
	requireContains(t, out, "Intro to Rust.mp4")
	requireContains(t, out, "Intro to Rust")
}
