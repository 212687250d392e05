package config

const (
	defaultConfigPath = "~/.config/foldersort/config.toml"
	projectConfigName = "foldersort.toml"
	// DefaultCSVLog is the audit log file name, relative to the working directory.
	DefaultCSVLog     = "organizer_log.csv"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Audit: Audit{
			CSVLog: DefaultCSVLog,
		},
		Mapping: Mapping{
			Extensions: map[string]string{},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
