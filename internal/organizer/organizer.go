package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"foldersort/internal/classify"
	"foldersort/internal/faults"
	"foldersort/internal/logging"
)

// Options tunes a single Organize call.
type Options struct {
	Recursive bool
	DryRun    bool
	// Exclude lists files or directories that are neither examined nor moved.
	Exclude []string
	// Logger receives one line per outcome. Nil discards output.
	Logger *slog.Logger
}

// Organize sorts the files of folder into category subfolders named by
// mapping (the built-in table when nil). It fails with faults.ErrNotFound
// when folder is missing or not a directory; every other problem is recorded
// against the file it concerns. Cancellation is honoured between files and
// returns the outcomes gathered so far with ctx.Err().
func Organize(ctx context.Context, folder string, mapping *classify.Mapping, opts Options) ([]MoveOutcome, RunSummary, error) {
	var summary RunSummary
	if mapping == nil {
		mapping = classify.Default()
	}
	logger := logging.NewComponentLogger(logging.WithContext(ctx, opts.Logger), "organizer")

	info, err := os.Stat(folder)
	if err != nil {
		return nil, summary, faults.Wrap(faults.ErrNotFound, "organize", "inspect folder", fmt.Sprintf("folder does not exist: %s", folder), err)
	}
	if !info.IsDir() {
		return nil, summary, faults.Wrap(faults.ErrNotFound, "organize", "inspect folder", fmt.Sprintf("not a directory: %s", folder), nil)
	}

	files, err := FindFiles(folder, opts.Recursive, opts.Exclude, logger)
	if err != nil {
		return nil, summary, faults.Wrap(faults.ErrTransient, "organize", "list files", folder, err)
	}
	logger.Debug("scan complete",
		logging.Int("files", len(files)),
		logging.Bool("recursive", opts.Recursive),
		logging.Bool("dry_run", opts.DryRun),
	)

	mover := NewMover()
	outcomes := make([]MoveOutcome, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return outcomes, summary, err
		}
		summary.Examined++

		name := filepath.Base(file)
		_, ext := splitName(name)
		category := mapping.Classify(ext)
		targetDir := filepath.Join(folder, category)
		desired := filepath.Join(targetDir, name)

		var outcome MoveOutcome
		if samePath(filepath.Dir(file), targetDir) {
			outcome = MoveOutcome{Source: file, Destination: desired, Reason: ReasonAlreadyInTarget}
		} else {
			outcome = mover.MoveFile(file, desired, opts.DryRun)
		}
		outcomes = append(outcomes, outcome)
		summary.record(outcome)
		logOutcome(logger, outcome, category)
	}

	logger.Debug("organize finished",
		logging.Int("examined", summary.Examined),
		logging.Int("moved", summary.Moved),
		logging.Int("skipped", summary.Skipped),
		logging.Int("errors", summary.Errors),
	)
	return outcomes, summary, nil
}

func logOutcome(logger *slog.Logger, outcome MoveOutcome, category string) {
	attrs := []logging.Attr{
		logging.String(logging.FieldSource, outcome.Source),
		logging.String(logging.FieldDestination, outcome.Destination),
		logging.String(logging.FieldCategory, category),
	}
	switch {
	case outcome.Moved:
		logger.Info("moved file", logging.Args(attrs...)...)
	case outcome.Skipped():
		attrs = append(attrs, logging.String(logging.FieldReason, outcome.Reason))
		logger.Debug("skipped file", logging.Args(attrs...)...)
	default:
		attrs = append(attrs, logging.String(logging.FieldReason, outcome.Reason))
		logger.Warn("failed to move file", logging.Args(attrs...)...)
	}
}
