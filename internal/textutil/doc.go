// Package textutil provides text processing utilities for title comparison.
//
// The primary use cases are:
//   - Normalizing titles for case-insensitive comparison
//   - Computing a whole-string similarity ratio between two titles
//   - Title-casing fallback display names
//
// The similarity ratio is edit-distance based: identical strings score 1.0,
// completely disjoint strings score 0.0.
package textutil
