package auditlog_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"foldersort/internal/auditlog"
	"foldersort/internal/faults"
	"foldersort/internal/organizer"
)

var fixedNow = time.Date(2026, 10, 15, 8, 30, 0, 123456000, time.FixedZone("CEST", 2*60*60))

func sampleOutcomes() []organizer.MoveOutcome {
	return []organizer.MoveOutcome{
		{Source: "/d/a.jpg", Destination: "/d/Images/a.jpg", Moved: true},
		{Source: "/d/b, c.txt", Destination: "/d/Documents/b, c.txt", Reason: organizer.ReasonDryRun},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

func TestTimestampIsUTCWithMicroseconds(t *testing.T) {
	if got, want := auditlog.Timestamp(fixedNow), "2026-10-15T06:30:00.123456Z"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestAppendCSVWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "organizer_log.csv")

	if err := auditlog.AppendCSV(path, sampleOutcomes(), fixedNow); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := auditlog.AppendCSV(path, sampleOutcomes()[:1], fixedNow); err != nil {
		t.Fatalf("second append: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d: %v", len(rows), rows)
	}
	if strings.Join(rows[0], ",") != "timestamp,src,dest,moved,reason" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	for _, row := range rows[1:] {
		if row[0] == "timestamp" {
			t.Fatalf("header repeated: %v", rows)
		}
	}
	want := []string{"2026-10-15T06:30:00.123456Z", "/d/b, c.txt", "/d/Documents/b, c.txt", "False", "dry_run"}
	if strings.Join(rows[2], "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected row: got %v want %v", rows[2], want)
	}
	if rows[1][3] != "True" || rows[1][4] != "" {
		t.Fatalf("unexpected moved row: %v", rows[1])
	}
}

func TestAppendCSVEmptyOutcomesWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "organizer_log.csv")
	if err := auditlog.AppendCSV(path, nil, fixedNow); err != nil {
		t.Fatalf("append: %v", err)
	}
	rows := readCSV(t, path)
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %v", rows)
	}
}

func TestAppendCSVPreservesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "organizer_log.csv")
	if err := os.WriteFile(path, []byte("timestamp,src,dest,moved,reason\nold,x,y,True,\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := auditlog.AppendCSV(path, sampleOutcomes()[:1], fixedNow); err != nil {
		t.Fatalf("append: %v", err)
	}
	rows := readCSV(t, path)
	if len(rows) != 3 || rows[1][0] != "old" {
		t.Fatalf("existing rows not preserved: %v", rows)
	}
}

func TestAppendCSVUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := auditlog.AppendCSV(filepath.Join(blocker, "log.csv"), sampleOutcomes(), fixedNow)
	if !errors.Is(err, faults.ErrTransient) {
		t.Fatalf("expected transient error, got %v", err)
	}
}

func TestAppendCSVRejectsEmptyPath(t *testing.T) {
	if err := auditlog.AppendCSV("  ", nil, fixedNow); !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestAppendHumanFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "organizer.log")
	if err := auditlog.AppendHuman(path, sampleOutcomes(), fixedNow); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := auditlog.AppendHuman(path, sampleOutcomes()[:1], fixedNow); err != nil {
		t.Fatalf("append: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), data)
	}
	want := "2026-10-15T06:30:00.123456Z\t/d/a.jpg\t->\t/d/Images/a.jpg\tmoved=True\t"
	if lines[0] != want {
		t.Fatalf("got %q want %q", lines[0], want)
	}
	if !strings.HasSuffix(lines[1], "\tmoved=False\tdry_run") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}
