// Package config provides configuration management for panemux with Viper
// integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for panemux.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Session  SessionConfig  `mapstructure:"session" yaml:"session"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// DatabaseConfig holds state-database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// SessionConfig controls snapshot persistence behavior.
type SessionConfig struct {
	// WorkspaceID scopes the persisted snapshot. Defaults to "default".
	WorkspaceID string `mapstructure:"workspace_id" yaml:"workspace_id"`
	// RestoreWindows controls whether auxiliary windows are reopened at
	// startup.
	RestoreWindows bool `mapstructure:"restore_windows" yaml:"restore_windows"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Manager loads configuration and watches for changes.
type Manager struct {
	mu       sync.RWMutex
	viper    *viper.Viper
	config   *Config
	onChange []func(*Config)
}

// NewManager creates a manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("PANEMUX")
	v.AutomaticEnv()

	m := &Manager{viper: v}
	m.setDefaults()
	return m, nil
}

// Load reads the configuration file, tolerating a missing file.
func (m *Manager) Load() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	m.mu.Lock()
	m.config = config
	m.mu.Unlock()

	return config, nil
}

// Current returns the last loaded configuration.
func (m *Manager) Current() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback invoked after every config reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// Watch reloads the configuration whenever the file changes on disk.
func (m *Manager) Watch() {
	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		config := &Config{}
		if err := m.viper.Unmarshal(config); err != nil {
			return
		}

		m.mu.Lock()
		m.config = config
		callbacks := append(([]func(*Config))(nil), m.onChange...)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(config)
		}
	})
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()
	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("session.workspace_id", defaults.Session.WorkspaceID)
	m.viper.SetDefault("session.restore_windows", defaults.Session.RestoreWindows)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// WriteDefault writes a default config file if none exists.
func (m *Manager) WriteDefault() error {
	configDir, err := ConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return m.viper.SafeWriteConfigAs(path)
}
