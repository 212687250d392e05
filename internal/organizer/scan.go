package organizer

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"foldersort/internal/logging"
)

// FindFiles lists the files under root. Without recursive only direct
// children are returned; with it every file at any depth is, without following
// directory symlinks. Symlinks to regular files count as files. Paths equal to
// or below an entry of exclude are left out. Unreadable subdirectories are
// logged and skipped; an unreadable root is an error.
func FindFiles(root string, recursive bool, exclude []string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	excluded := absPaths(exclude)
	if !recursive {
		return listDir(root, excluded)
	}

	files := make([]string, 0, 64)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warn("skipping unreadable path",
				logging.String(logging.FieldSource, path),
				logging.Error(walkErr),
			)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path != root && isExcluded(path, excluded) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if isFile(path, d) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func listDir(root string, excluded []string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if entry.IsDir() || isExcluded(path, excluded) {
			continue
		}
		if isFile(path, entry) {
			files = append(files, path)
		}
	}
	return files, nil
}

func isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// absPaths resolves exclude entries the same way isExcluded resolves
// candidates, so a folder reached through a symlink still matches.
func absPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		out = append(out, resolvePath(p))
	}
	return out
}

func isExcluded(path string, excluded []string) bool {
	if len(excluded) == 0 {
		return false
	}
	resolved := resolvePath(path)
	for _, base := range excluded {
		if isUnder(resolved, base) {
			return true
		}
	}
	return false
}
