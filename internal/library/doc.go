// Package library discovers local media files organized into channel folders.
//
// The library root contains one folder per channel, named
// "<display name> [<channel_id>]". The channel id parsed from the folder name
// is authoritative; the display name is cosmetic. Anything else in the root
// is ignored so the directory can hold unrelated content.
package library
