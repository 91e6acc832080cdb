// Package ytdlp wraps the yt-dlp CLI for remote channel listings and video
// metadata lookups.
//
// Channel listings use a flat playlist dump, which is fast but sparse: yt-dlp
// returns only ids and titles at that extraction level, so RemoteVideo
// durations stay unset in practice. The field is carried anyway so a richer
// listing source can be substituted without touching the resolver's
// dual-signal scoring contract.
package ytdlp
