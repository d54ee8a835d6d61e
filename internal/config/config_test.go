package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EASYCONSOLE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "EasyConsole Demo", cfg.Program.Title)
	assert.True(t, cfg.Program.Breadcrumb)
	assert.Equal(t, "single", cfg.Table.BorderStyle)
	assert.Equal(t, 20, cfg.Table.MaxColumnWidth)
	assert.Equal(t, 100, cfg.Table.ListPageSize)
	assert.Equal(t, "logs", cfg.Log.Directory)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	content := `
[program]
title = "Chores"
breadcrumb = false

[table]
border_style = "double"
max_column_width = 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("EASYCONSOLE_CONFIG", path)
	t.Setenv("EASYCONSOLE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Chores", cfg.Program.Title)
	assert.False(t, cfg.Program.Breadcrumb)
	assert.Equal(t, "double", cfg.Table.BorderStyle)
	assert.Equal(t, 12, cfg.Table.MaxColumnWidth)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Table.WordWrap)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("EASYCONSOLE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()
	require.Error(t, err)
}
