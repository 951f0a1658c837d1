package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "parafind.yaml", "debug_level: 2\noutput: json\npre_recognition: true\nplain_text: true\nlanguage: deu\npage_seg_mode: 6\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DebugLevel)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.True(t, cfg.PreRecognition)
	assert.True(t, cfg.PlainText)
	assert.Equal(t, "deu", cfg.Language)
	assert.Equal(t, 6, cfg.PageSegMode)
	assert.False(t, cfg.LogDebug)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "parafind.toml", "debug_level = 1\nlog_debug = true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.DebugLevel)
	assert.True(t, cfg.LogDebug)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, 3, cfg.PageSegMode)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	path := writeConfig(t, "parafind.yaml", "debug_level: 1\n")
	t.Setenv("PARAFIND_DEBUG_LEVEL", "3")
	t.Setenv("PARAFIND_OUTPUT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DebugLevel)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "bad.yaml", "output: xml\n"))
	assert.ErrorContains(t, err, "output must be")

	_, err = Load(writeConfig(t, "bad.yaml", "debug_level: 7\n"))
	assert.ErrorContains(t, err, "debug level")

	_, err = Load(writeConfig(t, "bad.yaml", "page_seg_mode: 14\n"))
	assert.ErrorContains(t, err, "page segmentation mode")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := Default()
	cfg.DebugLevel = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.PageSegMode = -1
	assert.Error(t, cfg.Validate())
}
