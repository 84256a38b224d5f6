package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/paths"
	"github.com/thoreinstein/tunedeck/pkg/fileutil"
)

// exportOutput holds the value of the config export --output flag.
var exportOutput string

func init() {
	configExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write (default stdout)")
	configCmd.AddCommand(configExportCmd)
}

var configExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all settings to a file",
	Long: `Write all settings to stdout or a file in JSON, YAML or TOML.

When --output is given without --format, the format follows the file
extension. Files are replaced atomically.`,
	Example: `  # Back up as JSON
  tunedeck config export -o settings-backup.json

  # Export as TOML
  tunedeck config export --format toml -o settings.toml

See Also: tunedeck config list`,
	Args: cobra.NoArgs,
	RunE: runConfigExport,
}

func runConfigExport(cmd *cobra.Command, _ []string) error {
	format := formatJSON
	switch {
	case cmd.Flags().Changed("format"):
		f, err := parseFormat(listFormat)
		if err != nil {
			return err
		}
		format = f
	case exportOutput != "":
		format = formatFromPath(exportOutput)
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	values, err := store.All()
	if err != nil {
		return err
	}

	if exportOutput == "" {
		data, err := encodeSettings(format, values)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	out, err := paths.Clean(exportOutput)
	if err != nil {
		return errors.NewUserError(err, "")
	}
	if err := paths.EnsureDir(filepath.Dir(out), 0); err != nil {
		return errors.NewSystemError(err, "")
	}

	switch format {
	case formatYAML:
		err = fileutil.AtomicWriteYAML(out, values)
	case formatTOML:
		err = fileutil.AtomicWriteTOML(out, dropNulls(values))
	default:
		err = fileutil.AtomicWriteJSON(out, values)
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "exporting to %s", out), "")
	}

	logger(cmd).Info("exported settings", "path", out, "format", string(format))
	return nil
}
