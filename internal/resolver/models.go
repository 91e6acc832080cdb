package resolver

import "vidsync/internal/reconciler"

// MatchDetails captures how a candidate was scored. MatchedTitle and
// MatchedDuration describe the winning candidate; Reason is set when no
// candidate cleared the thresholds or the listing was unavailable.
type MatchDetails struct {
	TitleSimilarity float64
	DurationDiff    *float64
	CombinedScore   float64
	MatchedTitle    string
	MatchedDuration *float64
	Reason          string
}

// Resolution is the outcome for one unknown file. VideoID is nil when no
// remote candidate cleared both the title floor and the duration gate.
type Resolution struct {
	File    reconciler.UnknownFile
	VideoID *string
	Details MatchDetails
}

// Resolved reports whether the file was matched to a remote video.
func (r Resolution) Resolved() bool {
	return r.VideoID != nil
}
