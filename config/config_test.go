package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvr-ai/go-toolbox/treasuremap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, treasuremap.DefaultCharset(), cfg.TreasureMap.Charset)
	assert.Equal(t, 1880, cfg.Movies.MinYear)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "tools.yaml", `
logging:
  level: debug
treasure_map:
  seed: 42
movies:
  max_year: 2030
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
	assert.Equal(t, int64(42), cfg.TreasureMap.Seed)
	assert.Equal(t, treasuremap.DefaultValidCharacters, cfg.TreasureMap.Charset.Valid)
	assert.Equal(t, 2030, cfg.Movies.MaxYear)
	assert.Equal(t, 1880, cfg.Movies.MinYear)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "tools.toml", `
[logging]
format = "json"

[treasure_map.charset]
valid = "#"
obscure = "."

[movies]
min_length = 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, treasuremap.Charset{Valid: "#", Obscure: "."}, cfg.TreasureMap.Charset)
	assert.Equal(t, 5, cfg.Movies.MinLength)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{name: "unknown extension", file: "tools.ini", content: "", want: "unsupported config extension"},
		{name: "bad yaml", file: "tools.yaml", content: "logging: [", want: "decode YAML"},
		{name: "bad toml", file: "tools.toml", content: "[logging", want: "decode TOML"},
		{name: "bad level", file: "tools.yaml", content: "logging:\n  level: loud\n", want: "logging.level"},
		{name: "bad format", file: "tools.yaml", content: "logging:\n  format: xml\n", want: "logging.format"},
		{name: "overlapping charset", file: "tools.yaml", content: "treasure_map:\n  charset:\n    valid: \"X!\"\n", want: "treasure_map.charset"},
		{name: "inverted years", file: "tools.yaml", content: "movies:\n  min_year: 2000\n  max_year: 1990\n", want: "min_year"},
		{name: "bad min length", file: "tools.toml", content: "[movies]\nmin_length = 0\n", want: "min_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
