package config

import (
	"fmt"

	"foldersort/internal/faults"
	"foldersort/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMapping(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMapping() error {
	for ext, category := range c.Mapping.Extensions {
		if ext == "" {
			return faults.Wrap(faults.ErrConfiguration, "config", "mapping.extensions", "extension keys must not be empty", nil)
		}
		if textutil.SanitizeFolderName(category) == "" {
			return faults.Wrap(faults.ErrConfiguration, "config", "mapping.extensions", fmt.Sprintf("category for %s must name a folder", ext), nil)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return faults.Wrap(faults.ErrConfiguration, "config", "logging.format", fmt.Sprintf("unsupported value %q (want console or json)", c.Logging.Format), nil)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return faults.Wrap(faults.ErrConfiguration, "config", "logging.level", fmt.Sprintf("unsupported value %q (want debug, info, warn or error)", c.Logging.Level), nil)
	}
	return nil
}
