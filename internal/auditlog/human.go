package auditlog

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"foldersort/internal/organizer"
)

// AppendHuman appends one tab-separated line per outcome to the log at path:
//
//	timestamp<TAB>src<TAB>-><TAB>dest<TAB>moved=True<TAB>reason
func AppendHuman(path string, outcomes []organizer.MoveOutcome, now time.Time) error {
	ts := Timestamp(now)
	return withLock(path, "append human log", func(f *os.File, _ int64) error {
		w := bufio.NewWriter(f)
		for _, o := range outcomes {
			if _, err := fmt.Fprintf(w, "%s\t%s\t->\t%s\tmoved=%s\t%s\n", ts, o.Source, o.Destination, movedLabel(o.Moved), o.Reason); err != nil {
				return err
			}
		}
		return w.Flush()
	})
}
