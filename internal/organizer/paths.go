package organizer

import (
	"os"
	"path/filepath"
	"strings"
)

// splitName separates name into stem and extension the way users read file
// names: dotfiles such as ".bashrc" and names ending in a bare dot have no
// extension.
func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == name || ext == "." {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// resolvePath returns the absolute, symlink-free form of p. Components that do
// not exist yet are appended unresolved to their deepest existing ancestor.
func resolvePath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return abs
	}
	return filepath.Join(resolvePath(parent), filepath.Base(abs))
}

// samePath reports whether a and b name the same file, either by resolved
// path or, when both exist, by identity (hard links).
func samePath(a, b string) bool {
	if resolvePath(a) == resolvePath(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func isUnder(path, base string) bool {
	if path == base {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(path, strings.TrimSuffix(base, sep)+sep)
}
