package textutil

import (
	"math"
	"testing"
)

func TestRatioIdentical(t *testing.T) {
	if got := Ratio("Intro to Rust", "Intro to Rust"); got != 1.0 {
		t.Errorf("Ratio(identical) = %v, want 1.0", got)
	}
}

func TestRatioCaseInsensitive(t *testing.T) {
	if got := Ratio("INTRO TO RUST", "intro to rust"); got != 1.0 {
		t.Errorf("Ratio(case variants) = %v, want 1.0", got)
	}
}

func TestRatioEmpty(t *testing.T) {
	if got := Ratio("", "something"); got != 0.0 {
		t.Errorf("Ratio(empty, x) = %v, want 0.0", got)
	}
	if got := Ratio("", ""); got != 1.0 {
		t.Errorf("Ratio(empty, empty) = %v, want 1.0", got)
	}
}

func TestRatioCloseTitles(t *testing.T) {
	// One transposition-ish edit out of 13 characters.
	got := Ratio("Intro to Rust", "Into to Rust")
	if got < 0.9 || got >= 1.0 {
		t.Errorf("Ratio(near titles) = %v, want in [0.9, 1.0)", got)
	}
}

func TestRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"abc", "xyz"},
		{"a", "aaaaaaaaaa"},
		{"Deep Dive: Goroutines", "Shallow Skim"},
		{"同じ題名", "同じ題名"},
	}
	for _, p := range pairs {
		got := Ratio(p[0], p[1])
		if got < 0.0 || got > 1.0 || math.IsNaN(got) {
			t.Errorf("Ratio(%q, %q) = %v, out of [0, 1]", p[0], p[1], got)
		}
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	if got := Normalize("  Two   Words\t"); got != "two words" {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"tech_channel":     "Tech Channel",
		"deep.dive-videos": "Deep Dive Videos",
		"":                 "",
		"___":              "",
	}
	for in, want := range cases {
		if got := TitleCase(in); got != want {
			t.Errorf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
