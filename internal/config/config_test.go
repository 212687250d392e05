package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"foldersort/internal/config"
	"foldersort/internal/faults"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(tempHome, ".config", "foldersort", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if want := filepath.Join(cwd, "organizer_log.csv"); cfg.Audit.CSVLog != want {
		t.Fatalf("unexpected csv log: got %q want %q", cfg.Audit.CSVLog, want)
	}
	if cfg.Audit.HumanLog != "" {
		t.Fatalf("expected human log disabled by default, got %q", cfg.Audit.HumanLog)
	}
	if cfg.Organize.Recursive || cfg.Organize.DryRun {
		t.Fatalf("expected recursive and dry-run off by default: %+v", cfg.Organize)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "foldersort.toml")
	content := `
[organize]
recursive = true
exclude = ["~/skip-me"]

[audit]
csv_log = "~/logs/audit.csv"
human_log = "~/logs/audit.log"

[mapping]
overrides_file = "~/map.csv"

[mapping.extensions]
HEIC = " Images "
".Md" = "Notes"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: path=%q exists=%v", resolved, exists)
	}
	if !cfg.Organize.Recursive {
		t.Fatal("expected recursive from file")
	}
	if len(cfg.Organize.Exclude) != 1 || cfg.Organize.Exclude[0] != filepath.Join(tempHome, "skip-me") {
		t.Fatalf("unexpected exclude list: %v", cfg.Organize.Exclude)
	}
	if cfg.Audit.CSVLog != filepath.Join(tempHome, "logs", "audit.csv") {
		t.Fatalf("unexpected csv log: %q", cfg.Audit.CSVLog)
	}
	if cfg.Audit.HumanLog != filepath.Join(tempHome, "logs", "audit.log") {
		t.Fatalf("unexpected human log: %q", cfg.Audit.HumanLog)
	}
	if cfg.Mapping.OverridesFile != filepath.Join(tempHome, "map.csv") {
		t.Fatalf("unexpected overrides file: %q", cfg.Mapping.OverridesFile)
	}
	if cfg.Mapping.Extensions[".heic"] != "Images" || cfg.Mapping.Extensions[".md"] != "Notes" {
		t.Fatalf("unexpected extension table: %v", cfg.Mapping.Extensions)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "foldersort.toml")
	if err := os.WriteFile(configPath, []byte("[organize]\nrecursiv = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestLoadRejectsExtensionKeysDifferingOnlyInCase(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "foldersort.toml")
	content := "[mapping.extensions]\n\".JPG\" = \"Photos\"\n\".jpg\" = \"Images\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error for duplicate keys, got %v", err)
	}
	if !strings.Contains(err.Error(), `".JPG" and ".jpg"`) {
		t.Fatalf("expected both keys in error, got %v", err)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != configPath {
		t.Fatalf("unexpected resolution: path=%q exists=%v", resolved, exists)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected default format, got %q", cfg.Logging.Format)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "csv_log") {
		t.Fatalf("sample config missing audit section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Audit.CSVLog != "organizer_log.csv" {
		t.Fatalf("unexpected sample csv log: %q", cfg.Audit.CSVLog)
	}

	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"level", func(c *config.Config) { c.Logging.Level = "verbose" }},
		{"empty category", func(c *config.Config) { c.Mapping.Extensions[".md"] = "" }},
		{"empty extension", func(c *config.Config) { c.Mapping.Extensions[""] = "Notes" }},
		{"parent category", func(c *config.Config) { c.Mapping.Extensions[".md"] = ".." }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, faults.ErrConfiguration) {
				t.Fatalf("expected configuration marker, got %v", err)
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/Downloads")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if want := filepath.Join(home, "Downloads"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("expected empty input to stay empty, got %q", got)
	}
}
