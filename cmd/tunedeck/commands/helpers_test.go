package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// testEnv points the CLI at a temporary settings file and returns its path.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "data", "config.json")
	t.Setenv("TUNEDECK_CONFIG_DIR", dir)
	t.Setenv("TUNEDECK_SETTINGS_FILE", settingsPath)
	t.Setenv("TUNEDECK_DEBUG", "")
	t.Setenv("TUNEDECK_LOG_FORMAT", "")
	return settingsPath
}

// resetFlags restores every flag in the command tree to its default so
// state does not leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// resetContexts drops the context each command kept from its last
// execution. Cobra only fills a command's context when it is nil, so a
// stale one would outlive the test that created it.
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil) //nolint:staticcheck // nil clears the stored context
	for _, c := range cmd.Commands() {
		resetContexts(c)
	}
}

// resetCommands restores flags and contexts across the command tree.
func resetCommands() {
	resetFlags(rootCmd)
	resetContexts(rootCmd)
}

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetCommands()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetCommands()
	})

	err := rootCmd.ExecuteContext(t.Context())
	return stdout.String(), err
}

func writeSettings(t *testing.T, path string, doc map[string]any) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func readSettings(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}
