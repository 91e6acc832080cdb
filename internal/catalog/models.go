package catalog

import "time"

// Channel represents a content publisher known to the catalog.
type Channel struct {
	ID          string
	Name        string
	URL         string
	Description string
	VideoCount  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Video represents a catalog video record. Downloaded and FilePath together
// carry the download state the reconciliation engine maintains: a record is
// downloaded-consistent iff Downloaded is true exactly when FilePath points at
// an existing local file.
type Video struct {
	ID              string
	ChannelID       string
	Title           string
	Description     string
	DurationSeconds *float64
	PublishedAt     string
	Downloaded      bool
	FilePath        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VideoSummary is the narrow projection used for exact-match lookups: the
// identity fields plus the download state the reconciler compares against
// disk.
type VideoSummary struct {
	ID         string
	Title      string
	Downloaded bool
	FilePath   string
}
