// Package organizer relocates files into category folders.
//
// Organize enumerates a folder, classifies each file by extension, skips files
// already sitting in their category folder, and hands the rest to a Mover that
// resolves a collision-free destination and performs (or, in dry-run mode,
// only plans) the move. Per-file failures are captured in MoveOutcome values
// and tallied in a RunSummary; only an invalid root folder aborts a run.
//
// Collision resolution is check-then-act. Another process creating the chosen
// name between the check and the rename is not defended against beyond a
// no-replace rename where the platform offers one; foldersort assumes a single
// process owns the folder for the duration of a run.
package organizer
