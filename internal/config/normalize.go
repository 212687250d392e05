package config

import (
	"fmt"
	"strings"

	"foldersort/internal/classify"
	"foldersort/internal/faults"
)

func (c *Config) normalize() error {
	if err := c.normalizeOrganize(); err != nil {
		return err
	}
	if err := c.normalizeAudit(); err != nil {
		return err
	}
	if err := c.normalizeMapping(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeOrganize() error {
	exclude := make([]string, 0, len(c.Organize.Exclude))
	for _, entry := range c.Organize.Exclude {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		expanded, err := expandPath(strings.TrimSpace(entry))
		if err != nil {
			return fmt.Errorf("organize.exclude: %w", err)
		}
		exclude = append(exclude, expanded)
	}
	c.Organize.Exclude = exclude
	return nil
}

func (c *Config) normalizeAudit() error {
	var err error
	c.Audit.CSVLog = strings.TrimSpace(c.Audit.CSVLog)
	if c.Audit.CSVLog == "" {
		c.Audit.CSVLog = DefaultCSVLog
	}
	if c.Audit.CSVLog, err = expandPath(c.Audit.CSVLog); err != nil {
		return fmt.Errorf("audit.csv_log: %w", err)
	}
	if c.Audit.HumanLog, err = expandPath(strings.TrimSpace(c.Audit.HumanLog)); err != nil {
		return fmt.Errorf("audit.human_log: %w", err)
	}
	return nil
}

func (c *Config) normalizeMapping() error {
	var err error
	if c.Mapping.OverridesFile, err = expandPath(strings.TrimSpace(c.Mapping.OverridesFile)); err != nil {
		return fmt.Errorf("mapping.overrides_file: %w", err)
	}
	normalized := make(map[string]string, len(c.Mapping.Extensions))
	sources := make(map[string]string, len(c.Mapping.Extensions))
	for ext, category := range c.Mapping.Extensions {
		key := classify.NormalizeExtension(ext)
		if prev, ok := sources[key]; ok {
			first, second := prev, ext
			if second < first {
				first, second = second, first
			}
			return faults.Wrap(faults.ErrConfiguration, "config", "mapping.extensions",
				fmt.Sprintf("keys %q and %q name the same extension %s", first, second, key), nil)
		}
		sources[key] = ext
		normalized[key] = strings.TrimSpace(category)
	}
	c.Mapping.Extensions = normalized
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
