// Package faults defines the error markers shared across foldersort.
//
// Errors that cross a package boundary are tagged with one of the sentinel
// markers so callers can classify them with errors.Is without parsing
// messages.
package faults
