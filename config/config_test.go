package config_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"element"}, cfg.Match.Attributes)
	assert.Equal(t, []string{"SOL"}, cfg.Input.Exclude)
	assert.Len(t, cfg.PDBOptions(), 3)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse(`
[match]
attributes = ["element", "atomname"]
max_matches = 5

[log]
level = "debug"

[input]
ignore_h = true
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"element", "atomname"}, cfg.Match.Attributes)
	assert.Equal(t, 5, cfg.Match.MaxMatches)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Input.IgnoreH)
	assert.Equal(t, []string{"SOL"}, cfg.Input.Exclude)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[match"},
		{"unknown key", "[match]\nattrs = [\"element\"]"},
		{"bad level", "[log]\nlevel = \"loud\""},
		{"bad format", "[log]\nformat = \"xml\""},
		{"negative model", "[input]\nmodel = -1"},
		{"negative max", "[match]\nmax_matches = -2"},
		{"empty attribute", "[match]\nattributes = [\"\"]"},
		{"negative rotation", "[log]\nmax_log_age = -1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse(tc.data)
			assert.ErrorIs(t, err, config.ErrBadConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "molmatch.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nformat = \"json\"\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, config.ErrBadConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"
	cfg.Log.Format = "logfmt"
	cfg.Log.Timestamps = false

	var buf bytes.Buffer
	l := cfg.NewLogger(&buf)
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	l.Info("hidden")
	l.Warn("shown", "atoms", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "atoms=3")
}

func TestLogOutput_Logfile(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	assert.Same(t, &buf, cfg.LogOutput(&buf))

	path := filepath.Join(t.TempDir(), "molmatch.log")
	cfg, err := config.Parse("[log]\nlogfile = \"" + filepath.ToSlash(path) + "\"\nmax_log_size = 1\nformat = \"logfmt\"")
	require.NoError(t, err)

	out := cfg.LogOutput(&buf)
	cfg.NewLogger(out).Info("rotated", "atoms", 3)
	c, ok := out.(io.Closer)
	require.True(t, ok)
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=rotated")
	assert.Zero(t, buf.Len())
}
