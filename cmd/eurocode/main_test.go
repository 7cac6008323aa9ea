package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlags restores flag state between executions; cobra keeps parsed
// values and Changed markers on the shared command tree.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, name := range []string{"country", "json"} {
		f := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f)
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	for _, name := range []string{"thickness", "steps"} {
		f := steelCmd.Flags().Lookup(name)
		require.NotNil(t, f)
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
}

// executeWithConfig runs the CLI against an isolated config dir. When
// configTOML is non-empty it is written as the user's config file first.
func executeWithConfig(t *testing.T, configTOML string, args ...string) (string, error) {
	t.Helper()

	confHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confHome)
	if configTOML != "" {
		dir := filepath.Join(confHome, "eurocode")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(configTOML), 0o644))
	}

	resetFlags(t)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// execute runs the CLI with no config file present.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, "", args...)
}
