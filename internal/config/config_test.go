//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde expands to home", input: "~/drafts.db", expected: filepath.Join(home, "drafts.db")},
		{name: "tilde with nested path", input: "~/a/b/c.log", expected: filepath.Join(home, "a", "b", "c.log")},
		{name: "absolute path unchanged", input: "/var/lib/drafts.db", expected: "/var/lib/drafts.db"},
		{name: "relative path unchanged", input: "data/drafts.db", expected: "data/drafts.db"},
		{name: "empty string unchanged", input: "", expected: ""},
		{name: "tilde only", input: "~", expected: home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.NotEmpty(t, paths)
	assert.Equal(t, "config.toml", paths[len(paths)-1], "local config must have the highest priority")
}

func TestLoadFiles_MissingFilesGiveDefaults(t *testing.T) {
	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultChannels, cfg.ChannelList())
	assert.Equal(t, "town-square", cfg.StartChannel())
	assert.Equal(t, defaultCooldown, cfg.GetHistoryConfig().Cooldown)
	assert.Empty(t, cfg.DatabasePath)
}

func TestLoadFiles_LastWins(t *testing.T) {
	dir := t.TempDir()
	global := writeTOML(t, dir, "global.toml", `
channels = ["town-square", "dev"]
default_channel = "dev"
database_path = "/tmp/global.db"

[history]
cooldown = 3
`)
	local := writeTOML(t, dir, "local.toml", `
database_path = "/tmp/local.db"

[history]
cooldown = 8

[log]
file = "/tmp/drafts.log"
level = "debug"
format = "json"
`)

	cfg, err := LoadFiles(global, local)
	require.NoError(t, err)

	assert.Equal(t, []string{"town-square", "dev"}, cfg.ChannelList())
	assert.Equal(t, "dev", cfg.StartChannel())
	assert.Equal(t, "/tmp/local.db", cfg.DatabasePath)
	assert.Equal(t, 8, cfg.GetHistoryConfig().Cooldown)

	logCfg := cfg.GetLogConfig()
	assert.Equal(t, "/tmp/drafts.log", logCfg.File)
	assert.Equal(t, "debug", logCfg.Level)
	assert.Equal(t, "json", logCfg.Format)
	assert.Equal(t, defaultLogSizeMB, logCfg.MaxSizeMB)
}

func TestLoadFiles_InvalidTOML(t *testing.T) {
	path := writeTOML(t, t.TempDir(), "bad.toml", "channels = [")

	_, err := LoadFiles(path)
	require.Error(t, err)
}

func TestLoadFiles_NormalizesChannels(t *testing.T) {
	path := writeTOML(t, t.TempDir(), "c.toml", `channels = [" dev ", "", "ops", "dev"]`)

	cfg, err := LoadFiles(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "ops"}, cfg.ChannelList())
}

func TestStartChannel_UnknownDefault(t *testing.T) {
	cfg := &Config{Channels: []string{"a", "b"}, DefaultChannel: "zzz"}
	assert.Equal(t, "a", cfg.StartChannel())
}

func TestGetHistoryConfig(t *testing.T) {
	tests := []struct {
		name     string
		cooldown int
		expected int
	}{
		{name: "unset uses default", cooldown: 0, expected: defaultCooldown},
		{name: "negative uses default", cooldown: -1, expected: defaultCooldown},
		{name: "too large uses default", cooldown: maxCooldown + 1, expected: defaultCooldown},
		{name: "lower bound kept", cooldown: 1, expected: 1},
		{name: "upper bound kept", cooldown: maxCooldown, expected: maxCooldown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{History: HistoryConfig{Cooldown: tt.cooldown}}
			assert.Equal(t, tt.expected, cfg.GetHistoryConfig().Cooldown)
		})
	}
}

func TestLoadFiles_ZeroCooldownKept(t *testing.T) {
	path := writeTOML(t, t.TempDir(), "c.toml", `
[history]
cooldown = 0
`)

	cfg, err := LoadFiles(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.GetHistoryConfig().Cooldown)
}

func TestGetLogConfig_Defaults(t *testing.T) {
	cfg := (&Config{}).GetLogConfig()

	assert.Empty(t, cfg.File)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, defaultLogSizeMB, cfg.MaxSizeMB)
	assert.Equal(t, defaultLogBackups, cfg.MaxBackups)
}
