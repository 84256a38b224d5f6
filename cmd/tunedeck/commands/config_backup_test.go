package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/tunedeck/internal/backup"
	"github.com/thoreinstein/tunedeck/internal/errors"
)

func backupIDs(t *testing.T, settingsPath string) []string {
	t.Helper()
	list, err := backup.NewManager(backup.DirFor(settingsPath)).List()
	if errors.Is(err, backup.ErrNoBackupsFound) {
		return nil
	}
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestConfigBackup_CreateListRestore(t *testing.T) {
	path := testEnv(t)
	writeSettings(t, path, map[string]any{"theme": "dark"})

	out, err := runCLI(t, "config", "backup", "list")
	require.NoError(t, err)
	assert.Equal(t, "No backups\n", out)

	out, err = runCLI(t, "config", "backup")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Created backup "), out)
	id := strings.TrimSpace(strings.TrimPrefix(out, "Created backup "))

	out, err = runCLI(t, "config", "backup", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, id)

	_, err = runCLI(t, "config", "set", "theme", "light")
	require.NoError(t, err)

	out, err = runCLI(t, "config", "backup", "restore", id)
	require.NoError(t, err)
	assert.Equal(t, "Restored backup "+id+"\n", out)
	assert.Equal(t, "dark", readSettings(t, path)["theme"])

	// The pre-restore state was snapshotted too.
	assert.Len(t, backupIDs(t, path), 2)
}

func TestConfigBackup_RestoreUnknown(t *testing.T) {
	testEnv(t)

	_, err := runCLI(t, "config", "backup", "restore", "20000101T000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, backup.ErrNoBackupsFound))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestConfigBackup_RestoreCorrupted(t *testing.T) {
	path := testEnv(t)
	writeSettings(t, path, map[string]any{"theme": "dark"})

	_, err := runCLI(t, "config", "backup")
	require.NoError(t, err)
	ids := backupIDs(t, path)
	require.Len(t, ids, 1)

	copyPath := filepath.Join(backup.DirFor(path), ids[0], "config.json")
	require.NoError(t, os.WriteFile(copyPath, []byte(`{}`), 0o600))

	_, err = runCLI(t, "config", "backup", "restore", ids[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, backup.ErrBackupCorrupted))
}

func TestConfigBackup_Retention(t *testing.T) {
	path := testEnv(t)
	t.Setenv("TUNEDECK_BACKUP_RETENTION", "2")

	for range 3 {
		_, err := runCLI(t, "-q", "config", "backup")
		require.NoError(t, err)
	}
	assert.Len(t, backupIDs(t, path), 2)
}

func TestDestructiveCommandsSnapshotFirst(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"reset all", []string{"config", "reset", "--all"}},
		{"prune", []string{"config", "prune"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testEnv(t)
			writeSettings(t, path, map[string]any{"theme": "dark", "legacyKey": 1})

			_, err := runCLI(t, tt.args...)
			require.NoError(t, err)

			ids := backupIDs(t, path)
			require.Len(t, ids, 1)
			data, err := os.ReadFile(filepath.Join(backup.DirFor(path), ids[0], "config.json"))
			require.NoError(t, err)
			assert.Contains(t, string(data), `"legacyKey"`)
		})
	}
}

func TestConfigReset_SingleKeyNoSnapshot(t *testing.T) {
	path := testEnv(t)

	_, err := runCLI(t, "config", "reset", "theme")
	require.NoError(t, err)
	assert.Empty(t, backupIDs(t, path))
}
