// Package reconciler diffs locally scanned files against the catalog's known
// videos using exact title equality.
//
// Work is split into two phases: Analyze is read-only and partitions files
// into exact matches and unknowns; Apply mutates the catalog for matches
// whose download status drifted. The split keeps dry-run trivial and mutation
// isolated. Title comparison is case-sensitive, unnormalized string equality.
package reconciler
