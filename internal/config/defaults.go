package config

import "path/filepath"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	dataDir, err := DataDir()
	if err != nil {
		dataDir = "."
	}

	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(dataDir, "panemux.db"),
		},
		Session: SessionConfig{
			WorkspaceID:    "default",
			RestoreWindows: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
