// Package workflow orchestrates one reconciliation pass: scan the local
// library, reconcile exact matches, resolve the leftovers against remote
// listings, and synchronize the catalog. A file lock keeps passes from
// overlapping; every pass carries a correlation id through its log records.
package workflow
