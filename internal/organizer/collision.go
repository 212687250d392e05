package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"foldersort/internal/faults"
)

// maxCollisionAttempts bounds the numeric suffix search.
const maxCollisionAttempts = 10000

// ResolveUnique returns desired when nothing exists there, otherwise the first
// free "stem (n).ext" sibling for n = 1, 2, .... The answer is only valid at
// the moment of the check.
func ResolveUnique(desired string) (string, error) {
	return resolveUnique(desired, pathExists)
}

func resolveUnique(desired string, exists func(string) (bool, error)) (string, error) {
	taken, err := exists(desired)
	if err != nil {
		return "", err
	}
	if !taken {
		return desired, nil
	}

	dir := filepath.Dir(desired)
	stem, ext := splitName(filepath.Base(desired))
	for n := 1; n <= maxCollisionAttempts; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", faults.Wrap(faults.ErrExhausted, "organize", "resolve destination",
		fmt.Sprintf("no free name for %s after %d attempts", desired, maxCollisionAttempts), nil)
}

// pathExists uses Lstat so a dangling symlink still counts as occupied.
func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
