package organizer

import (
	"errors"
	"os"
	"path/filepath"

	"foldersort/internal/fileutil"
)

// Mover executes single-file moves. A Mover remembers the destinations it has
// planned during dry runs so one preview never hands the same name to two
// files; it is not safe for concurrent use.
type Mover struct {
	planned map[string]struct{}
}

// NewMover returns a Mover with no planned destinations.
func NewMover() *Mover {
	return &Mover{planned: make(map[string]struct{})}
}

// MoveFile moves src to dest with a fresh Mover.
func MoveFile(src, dest string, dryRun bool) MoveOutcome {
	return NewMover().MoveFile(src, dest, dryRun)
}

// MoveFile moves src to a collision-free variant of dest. Failures are
// reported through the outcome, never as an error. A dry run plans the move
// without creating directories or touching any file.
func (m *Mover) MoveFile(src, dest string, dryRun bool) MoveOutcome {
	if !dryRun {
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return failedOutcome(src, dest, err)
		}
	}

	if samePath(src, dest) {
		return MoveOutcome{Source: src, Destination: dest, Reason: ReasonSamePath}
	}

	final, err := resolveUnique(dest, m.occupied)
	if err != nil {
		return failedOutcome(src, dest, err)
	}

	if dryRun {
		if m.planned == nil {
			m.planned = make(map[string]struct{})
		}
		m.planned[resolvePath(final)] = struct{}{}
		return MoveOutcome{Source: src, Destination: final, Reason: ReasonDryRun}
	}

	err = fileutil.MoveFile(src, final)
	if errors.Is(err, os.ErrExist) {
		// Something claimed the name after resolution; pick again once.
		retry, resolveErr := resolveUnique(dest, m.occupied)
		if resolveErr != nil {
			return failedOutcome(src, final, resolveErr)
		}
		final = retry
		err = fileutil.MoveFile(src, final)
	}
	if err != nil {
		return failedOutcome(src, final, err)
	}
	return MoveOutcome{Source: src, Destination: final, Moved: true}
}

func (m *Mover) occupied(path string) (bool, error) {
	taken, err := pathExists(path)
	if err != nil || taken {
		return taken, err
	}
	if len(m.planned) == 0 {
		return false, nil
	}
	_, claimed := m.planned[resolvePath(path)]
	return claimed, nil
}

func failedOutcome(src, dest string, err error) MoveOutcome {
	reason := "move failed"
	if err != nil && err.Error() != "" {
		reason = err.Error()
	}
	return MoveOutcome{Source: src, Destination: dest, Reason: reason}
}
