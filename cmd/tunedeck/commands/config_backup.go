package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	buildinfo "github.com/thoreinstein/tunedeck/cmd"
	"github.com/thoreinstein/tunedeck/internal/backup"
	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/settings"
)

func init() {
	configBackupCmd.AddCommand(configBackupListCmd)
	configBackupCmd.AddCommand(configBackupRestoreCmd)
	configCmd.AddCommand(configBackupCmd)
}

var configBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the settings file",
	Long: `Copy the settings file into <settings dir>/backups/<timestamp>/.

Snapshots are also taken automatically before 'config reset --all',
'config prune' and 'config backup restore'. Only the most recent
backup_retention snapshots (default 5) are kept.`,
	Example: `  # Take a snapshot
  tunedeck config backup

  # List snapshots
  tunedeck config backup list

  # Roll back
  tunedeck config backup restore 20260123T100712`,
	Args: cobra.NoArgs,
	RunE: runConfigBackup,
}

var configBackupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List settings snapshots, newest first",
	Args:  cobra.NoArgs,
	RunE:  runConfigBackupList,
}

var configBackupRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Replace the settings file with a snapshot",
	Long: `Replace the settings file with a snapshot after verifying its checksum.

The current file is snapshotted first, so a restore can itself be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigBackupRestore,
}

// backupManager returns the snapshot manager for the configured settings file.
func backupManager() *backup.Manager {
	return backup.NewManager(backup.DirFor(options.SettingsFile),
		backup.WithRetentionCount(options.BackupRetention),
		backup.WithAppVersion(buildinfo.Version))
}

// snapshot backs up the settings file before a destructive change.
func snapshot(cmd *cobra.Command, store *settings.Store) error {
	manifest, err := backupManager().Backup(store.Path())
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "backing up settings"),
			"Check permissions on "+backup.DirFor(store.Path()))
	}
	logger(cmd).Info("backed up settings", "id", manifest.ID)
	return nil
}

func runConfigBackup(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	manifest, err := backupManager().Backup(store.Path())
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Created backup %s\n", manifest.ID)
	}
	return nil
}

func runConfigBackupList(cmd *cobra.Command, _ []string) error {
	if options == nil {
		return errors.NewSystemError(errors.New("CLI configuration not loaded"), "")
	}

	manifests, err := backupManager().List()
	if err != nil {
		if errors.Is(err, backup.ErrNoBackupsFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "No backups")
			return nil
		}
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSIZE")
	for _, m := range manifests {
		fmt.Fprintf(w, "%s\t%s\t%d\n", m.ID, m.CreatedAt.Local().Format(time.DateTime), m.Size)
	}
	return w.Flush()
}

func runConfigBackupRestore(cmd *cobra.Command, args []string) error {
	if options == nil {
		return errors.NewSystemError(errors.New("CLI configuration not loaded"), "")
	}
	id := args[0]
	mgr := backupManager()

	if _, err := mgr.Get(id); err != nil {
		return errors.NewUserError(err, "Run 'tunedeck config backup list' to see snapshots")
	}

	current, err := mgr.Backup(options.SettingsFile)
	switch {
	case err == nil:
		logger(cmd).Info("backed up settings", "id", current.ID)
	case errors.Is(err, backup.ErrNothingToBackup):
	default:
		return errors.NewSystemError(err, "")
	}

	if _, err := mgr.Restore(id, options.SettingsFile); err != nil {
		if errors.Is(err, backup.ErrBackupCorrupted) {
			return errors.NewUserError(err, "Pick another snapshot")
		}
		return errors.NewSystemError(err, "")
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Restored backup %s\n", id)
	}
	return nil
}
