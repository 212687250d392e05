package auditlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"foldersort/internal/faults"
)

// TimestampLayout is the UTC layout shared by every row of one append.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp renders now the way audit rows record it.
func Timestamp(now time.Time) string {
	return now.UTC().Format(TimestampLayout)
}

func movedLabel(moved bool) string {
	if moved {
		return "True"
	}
	return "False"
}

// withLock opens path for appending under an exclusive lock and passes the
// file and its size before the append to fn.
func withLock(path, operation string, fn func(f *os.File, size int64) error) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return faults.Wrap(faults.ErrConfiguration, "audit", operation, "log path is empty", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return faults.Wrap(faults.ErrTransient, "audit", operation, "create log directory", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return faults.Wrap(faults.ErrTransient, "audit", operation, "acquire log lock", err)
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return faults.Wrap(faults.ErrTransient, "audit", operation, fmt.Sprintf("open %s", path), err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return faults.Wrap(faults.ErrTransient, "audit", operation, fmt.Sprintf("stat %s", path), err)
	}
	if err := fn(f, info.Size()); err != nil {
		_ = f.Close()
		return faults.Wrap(faults.ErrTransient, "audit", operation, fmt.Sprintf("write %s", path), err)
	}
	if err := f.Close(); err != nil {
		return faults.Wrap(faults.ErrTransient, "audit", operation, fmt.Sprintf("close %s", path), err)
	}
	return nil
}
