package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/badgeview/cmd/badgerender/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"SCALE", "PARENT", "PARENT_COLOR", "STYLE", "OUTPUT", "FRAMES", "MARGIN", "VERBOSE"} {
		key := config.Prefix + name
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := config.Load()

	require.NoError(t, err, "a missing default .env file is not an error")
	assert.Equal(t, 2.0, cfg.Scale)
	assert.Equal(t, "", cfg.Parent)
	assert.Equal(t, "#E5E5EA", cfg.ParentColor)
	assert.Equal(t, "badge.png", cfg.Output)
	assert.Equal(t, 12, cfg.Frames)
	assert.Equal(t, 4.0, cfg.Margin)
	assert.False(t, cfg.Verbose)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("BADGERENDER_SCALE", "3")
	t.Setenv("BADGERENDER_PARENT", "120x80")
	t.Setenv("BADGERENDER_FRAMES", "30")
	t.Setenv("BADGERENDER_VERBOSE", "true")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Scale)
	assert.Equal(t, "120x80", cfg.Parent)
	assert.Equal(t, 30, cfg.Frames)
	assert.True(t, cfg.Verbose)
}

func TestLoad_DotenvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "render.env")
	require.NoError(t, os.WriteFile(path, []byte("BADGERENDER_OUTPUT=out/badge.png\nBADGERENDER_SCALE=1\n"), 0o644))
	t.Setenv("BADGERENDER_SCALE", "4")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "out/badge.png", cfg.Output, "dotenv values fill unset variables")
	assert.Equal(t, 4.0, cfg.Scale, "the environment wins over dotenv")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("BADGERENDER_FRAMES", "many")

	_, err := config.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		ok   bool
	}{
		{"valid", config.Config{Scale: 1, Frames: 2}, true},
		{"zero scale", config.Config{Scale: 0, Frames: 2}, false},
		{"one frame", config.Config{Scale: 1, Frames: 1}, false},
		{"negative margin", config.Config{Scale: 1, Frames: 2, Margin: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
