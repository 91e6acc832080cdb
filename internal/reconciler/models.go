package reconciler

import "vidsync/internal/library"

// ExactMatch pairs a local file with the catalog record carrying the same
// title in the same channel. NeedsUpdate is set when the record's download
// state does not reflect the file on disk; Updated is set by Apply once the
// catalog write succeeds.
type ExactMatch struct {
	ChannelID   string
	ChannelName string
	Local       library.LocalFile
	VideoID     string
	Title       string
	NeedsUpdate bool
	Updated     bool
}

// UnknownFile is a local file with no exact catalog title match. It carries
// enough channel context for fuzzy resolution downstream.
type UnknownFile struct {
	ChannelID   string
	ChannelName string
	Local       library.LocalFile
}

// UpdatedRecord describes one catalog record changed during Apply.
type UpdatedRecord struct {
	VideoID  string
	Title    string
	FilePath string
}

// Stats aggregates counts for one reconcile run.
type Stats struct {
	TotalFiles     int
	ExactMatches   int
	UnknownFiles   int
	RecordsUpdated int
}

// Analysis is the read-only output of the first phase.
type Analysis struct {
	ExactMatches []ExactMatch
	UnknownFiles []UnknownFile
	TotalFiles   int
}

// Outcome aggregates both phases: the partitioned files, the records
// actually changed, and counts.
type Outcome struct {
	ExactMatches   []ExactMatch
	UnknownFiles   []UnknownFile
	UpdatedRecords []UpdatedRecord
	Stats          Stats
}
