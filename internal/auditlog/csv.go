package auditlog

import (
	"encoding/csv"
	"os"
	"time"

	"foldersort/internal/organizer"
)

// Header is the first row of a new CSV audit log.
var Header = []string{"timestamp", "src", "dest", "moved", "reason"}

// AppendCSV appends one row per outcome to the CSV log at path. The header is
// written only when the file is empty. An empty outcome list still creates the
// file with its header.
func AppendCSV(path string, outcomes []organizer.MoveOutcome, now time.Time) error {
	ts := Timestamp(now)
	return withLock(path, "append csv", func(f *os.File, size int64) error {
		w := csv.NewWriter(f)
		if size == 0 {
			if err := w.Write(Header); err != nil {
				return err
			}
		}
		for _, o := range outcomes {
			if err := w.Write([]string{ts, o.Source, o.Destination, movedLabel(o.Moved), o.Reason}); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
}
