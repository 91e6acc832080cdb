// Package syncer persists fuzzy resolution results: it updates download
// state for known videos and ingests full records for videos the catalog
// has never seen. Unresolved files are left alone.
package syncer
