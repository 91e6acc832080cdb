// Package resolver identifies local files that failed exact title matching
// by scoring them against the channel's remote video listing. Title
// similarity is the hard floor; duration proximity refines the score when
// both sides report one.
package resolver
