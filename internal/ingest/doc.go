// Package ingest creates full catalog records for videos discovered on disk
// but absent from the catalog. Metadata comes from a single-video yt-dlp
// dump; the owning channel row is created on demand.
package ingest
