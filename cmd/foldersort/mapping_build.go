package main

import (
	"strings"

	"foldersort/internal/classify"
	"foldersort/internal/config"
)

// buildMapping layers the built-in table, the [mapping.extensions] section,
// the configured overrides file and finally the --map file. Later layers win.
func buildMapping(cfg *config.Config, mapFile string) (*classify.Mapping, error) {
	mapping := classify.Default()
	if cfg == nil {
		cfgVal := config.Default()
		cfg = &cfgVal
	}
	mapping.Merge(cfg.Mapping.Extensions)

	for _, path := range []string{cfg.Mapping.OverridesFile, mapFile} {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		overrides, err := classify.LoadOverrides(expanded)
		if err != nil {
			return nil, err
		}
		mapping.Merge(overrides)
	}
	return mapping, nil
}
