// Package config loads user configuration from TOML files.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultCooldown   = 5
	maxCooldown       = 100
	defaultLogSizeMB  = 10
	defaultLogBackups = 3
)

// DefaultChannels is used when no channels are configured.
var DefaultChannels = []string{"town-square", "off-topic"}

type Config struct {
	Channels       []string `koanf:"channels"`
	DefaultChannel string   `koanf:"default_channel"`
	DatabasePath   string   `koanf:"database_path"` // empty means the XDG data dir

	History HistoryConfig `koanf:"history"`
	Log     LogConfig     `koanf:"log"`
}

// HistoryConfig tunes undo/redo in the composer.
type HistoryConfig struct {
	// Cooldown is the number of keystrokes merged into one undo step
	// (0-100, 0 gives every keystroke its own step, default: 5)
	Cooldown int `koanf:"cooldown"`

	cooldownSet bool
}

// LogConfig holds file logging settings. Logging is off without a file.
type LogConfig struct {
	File       string `koanf:"file"`
	Level      string `koanf:"level"`  // "debug", "info", "warn", "error"
	Format     string `koanf:"format"` // "text" or "json"
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given TOML files, skipping missing ones.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DatabasePath = expandPath(cfg.DatabasePath)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Channels = normalizeChannels(cfg.Channels)
	cfg.History.cooldownSet = k.Exists("history.cooldown")

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/drafts/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "drafts", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// normalizeChannels trims names, drops empties and duplicates, keeping order.
func normalizeChannels(in []string) []string {
	out := make([]string, 0, len(in))
	for _, ch := range in {
		ch = strings.TrimSpace(ch)
		if ch == "" || slices.Contains(out, ch) {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// ChannelList returns the configured channels, or the defaults.
func (c *Config) ChannelList() []string {
	if len(c.Channels) == 0 {
		return slices.Clone(DefaultChannels)
	}
	return slices.Clone(c.Channels)
}

// StartChannel returns the configured default channel if it is known,
// otherwise the first channel.
func (c *Config) StartChannel() string {
	channels := c.ChannelList()
	if slices.Contains(channels, c.DefaultChannel) {
		return c.DefaultChannel
	}
	return channels[0]
}

// GetHistoryConfig returns the history configuration with defaults applied.
func (c *Config) GetHistoryConfig() HistoryConfig {
	cfg := c.History
	unset := cfg.Cooldown == 0 && !cfg.cooldownSet
	if unset || cfg.Cooldown < 0 || cfg.Cooldown > maxCooldown {
		cfg.Cooldown = defaultCooldown
	}
	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = defaultLogSizeMB
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultLogBackups
	}
	return cfg
}
