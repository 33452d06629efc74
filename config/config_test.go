// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/config"
)

// clearEnv unsets every SOCIALNET_* override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvLogLevel, config.EnvLogFormat, config.EnvClock,
		config.EnvMetricsAddr, config.EnvMetricsNamespace, config.EnvInput,
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.NewLoader(config.WithDotEnvFiles()).Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, config.StdinPath, cfg.Input.Path)
	require.Equal(t, config.ClockCounter, cfg.Clock.Mode)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "socialnet.yaml", `
log:
  level: debug
  format: json
clock:
  mode: monotonic
metrics:
  addr: ":9102"
input:
  path: commands.txt
`)
	cfg, err := config.NewLoader(config.WithDotEnvFiles()).Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, config.ClockMonotonic, cfg.Clock.Mode)
	require.Equal(t, ":9102", cfg.Metrics.Addr)
	require.Equal(t, "commands.txt", cfg.Input.Path)

	// environment beats the file
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvInput, "-")
	cfg, err = config.NewLoader(config.WithDotEnvFiles()).Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "-", cfg.Input.Path)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv only fills unset variables; t.Setenv("") leaves them set-but-empty,
	// so unset explicitly and restore afterwards.
	prev, had := os.LookupEnv(config.EnvClock)
	require.NoError(t, os.Unsetenv(config.EnvClock))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(config.EnvClock, prev)
		} else {
			_ = os.Unsetenv(config.EnvClock)
		}
	})

	dir := t.TempDir()
	env := writeFile(t, dir, ".env", config.EnvClock+"=monotonic\n")
	cfg, err := config.NewLoader(config.WithDotEnvFiles(filepath.Join(dir, "missing.env"), env)).Load("")
	require.NoError(t, err)
	require.Equal(t, config.ClockMonotonic, cfg.Clock.Mode)
}

func TestLoad_Rejects(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cases := map[string]string{
		"unknown key":   "log:\n  colour: red\n",
		"bad level":     "log:\n  level: loud\n",
		"bad clock":     "clock:\n  mode: sundial\n",
		"bad addr":      "metrics:\n  addr: not-an-addr\n",
		"empty input":   "input:\n  path: \"\"\n",
		"malformed yml": "log: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, "c.yaml", body)
			_, err := config.NewLoader(config.WithDotEnvFiles()).Load(path)
			require.Error(t, err)
		})
	}

	_, err := config.NewLoader(config.WithDotEnvFiles()).Load(filepath.Join(dir, "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := config.NewLogger(config.LogConfig{Level: "debug", Format: format})
		require.NoError(t, err, format)
		require.NotNil(t, l)
	}
	_, err := config.NewLogger(config.LogConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
	_, err = config.NewLogger(config.LogConfig{Level: "info", Format: "xml"})
	require.Error(t, err)
}
