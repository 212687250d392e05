// Package fileutil holds the filesystem primitives used to relocate files:
// no-replace renames, cross-device copy fallbacks, and verified copies.
package fileutil
