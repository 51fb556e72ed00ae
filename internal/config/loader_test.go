package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/ignoregen/internal/errors"
)

// isolate points the default config location at an empty temp dir and
// clears ignoregen env vars.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("IGNOREGEN_CONFIG", "")
	t.Setenv("IGNOREGEN_PATH", "")
	t.Setenv("IGNOREGEN_TYPE", "")
	t.Setenv("IGNOREGEN_LOG_TIMESTAMPS", "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("path", DefaultPath, "")
	fs.String("type", DefaultType, "")
	fs.Bool("timestamps", false, "")
	return fs
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("defaults without file, env or flags", func(t *testing.T) {
		isolate(t)

		cfg, err := NewLoader().Load(LoaderOptions{})
		require.NoError(t, err)
		assert.Equal(t, ".gitignore", cfg.Path)
		assert.Equal(t, "python", cfg.Type)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("loads explicit config file", func(t *testing.T) {
		dir := isolate(t)
		path := writeConfig(t, dir, "path: out/.gitignore\ntype: python\nlog:\n  timestamps: true\n")

		cfg, err := NewLoader().Load(LoaderOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "out/.gitignore", cfg.Path)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)
	})

	t.Run("loads default config file location", func(t *testing.T) {
		dir := isolate(t)
		confDir := filepath.Join(dir, "ignoregen")
		require.NoError(t, os.MkdirAll(confDir, 0o755))
		writeConfig(t, confDir, "path: from-default.txt\n")

		cfg, err := NewLoader().Load(LoaderOptions{})
		require.NoError(t, err)
		assert.Equal(t, "from-default.txt", cfg.Path)
	})

	t.Run("config file path from environment", func(t *testing.T) {
		isolate(t)
		path := writeConfig(t, t.TempDir(), "type: node\n")
		t.Setenv("IGNOREGEN_CONFIG", path)

		cfg, err := NewLoader().Load(LoaderOptions{})
		require.NoError(t, err)
		assert.Equal(t, "node", cfg.Type)
	})

	t.Run("missing explicit file is not found", func(t *testing.T) {
		dir := isolate(t)

		_, err := NewLoader().Load(LoaderOptions{ConfigFile: filepath.Join(dir, "nope.yaml")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	})

	t.Run("unknown key is a validation error", func(t *testing.T) {
		dir := isolate(t)
		path := writeConfig(t, dir, "path: x\nkubeconfig: /etc/kube\n")

		_, err := NewLoader().Load(LoaderOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("empty file uses defaults", func(t *testing.T) {
		dir := isolate(t)
		path := writeConfig(t, dir, "")

		cfg, err := NewLoader().Load(LoaderOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, ".gitignore", cfg.Path)
	})

	t.Run("env overrides file", func(t *testing.T) {
		dir := isolate(t)
		path := writeConfig(t, dir, "path: file.txt\ntype: python\n")
		t.Setenv("IGNOREGEN_PATH", "env.txt")
		t.Setenv("IGNOREGEN_LOG_TIMESTAMPS", "true")

		cfg, err := NewLoader().Load(LoaderOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "env.txt", cfg.Path)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)
	})

	t.Run("set flags override env", func(t *testing.T) {
		isolate(t)
		t.Setenv("IGNOREGEN_PATH", "env.txt")
		t.Setenv("IGNOREGEN_TYPE", "go")

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--path", "flag.txt"}))

		cfg, err := NewLoader().Load(LoaderOptions{Flags: flags})
		require.NoError(t, err)
		assert.Equal(t, "flag.txt", cfg.Path)
		assert.Equal(t, "go", cfg.Type, "unset flags do not override env")
	})

	t.Run("tilde in path is expanded", func(t *testing.T) {
		isolate(t)
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		t.Setenv("IGNOREGEN_PATH", "~/proj/.gitignore")

		cfg, err := NewLoader().Load(LoaderOptions{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "proj", ".gitignore"), cfg.Path)
	})
}
