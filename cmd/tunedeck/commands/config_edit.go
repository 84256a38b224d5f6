package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/tunedeck/internal/editor"
	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/settings"
)

func init() {
	configCmd.AddCommand(configEditCmd)
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the settings file in $EDITOR",
	Long: `Open the settings file in your default editor.

The file is loaded first so every setting is present. Uses $EDITOR, then
$VISUAL, then nano or vi. The edited file is checked afterwards.`,
	Example: `  # Open settings in default editor
  tunedeck config edit

  # Open with specific editor
  EDITOR=nano tunedeck config edit

See Also: tunedeck config validate`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	streams := editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := editor.Open(cmd.Context(), store.Path(), streams); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
	}

	if err := store.Reload(); err != nil {
		return errors.NewUserError(err, "The file is no longer valid JSON; run 'tunedeck config edit' again")
	}

	cfg, err := store.Config()
	if err != nil {
		logger(cmd).Warn("edited settings have values of the wrong type", "error", err)
		return nil
	}
	if errs := settings.Validate(cfg); len(errs) > 0 {
		logger(cmd).Warn("edited settings have invalid values", "count", len(errs),
			"hint", "run 'tunedeck config validate'")
	}
	return nil
}
