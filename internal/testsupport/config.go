package testsupport

import (
	"path/filepath"
	"testing"

	"foldersort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose audit logs live in a per-test temp
// directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Audit.CSVLog = filepath.Join(base, "logs", "organizer_log.csv")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithHumanLog enables the human-readable audit log inside the temp directory.
func WithHumanLog() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Audit.HumanLog = filepath.Join(b.baseDir, "logs", "organizer.log")
	}
}

// WithExtension adds an inline extension mapping.
func WithExtension(ext, category string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Mapping.Extensions[ext] = category
	}
}
