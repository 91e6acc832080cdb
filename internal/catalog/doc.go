// Package catalog manages the durable record store of known videos and their
// download state, backed by SQLite.
//
// The reconciliation engine reads video titles and download status through
// this package and mutates records only through SetDownloaded, which is the
// single narrow write used to restore downloaded-consistency. Full record
// creation goes through SaveVideo/SaveChannel, driven by metadata ingestion.
//
// The store serializes its own writes (WAL journal, busy timeout); callers
// issue one single-record write at a time with no cross-record transaction.
package catalog
