package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/tunedeck/internal/cli/prompt"
	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/settings"
)

// resetAll holds the value of the config reset --all flag.
var resetAll bool

// assumeYes skips confirmation prompts.
var assumeYes bool

func init() {
	configResetCmd.Flags().BoolVar(&resetAll, "all", false, "reset every known setting")
	configResetCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
	configPruneCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configPruneCmd)
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key...]",
	Short: "Restore settings to their defaults",
	Long: `Restore one or more settings to their default values and save.

The window bounds default is recomputed from the configured display.
With --all, the file is snapshotted first (see 'tunedeck config backup').
On a terminal --all asks for confirmation unless --yes is given. When
stdin or stdout is not a terminal (scripts, pipes) it proceeds without
asking.`,
	Example: `  # Reset the theme
  tunedeck config reset theme

  # Reset everything
  tunedeck config reset --all

See Also: tunedeck config set, tunedeck config prune`,
	RunE: runConfigReset,
}

var configPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove settings this version does not know",
	Long: `Remove keys that are not part of the default settings and save.

Loading never removes unknown keys, so settings written by newer or older
versions of the player survive until pruned. The file is snapshotted
first. On a terminal prune asks for confirmation unless --yes is given.
When stdin or stdout is not a terminal it proceeds without asking.`,
	Args: cobra.NoArgs,
	RunE: runConfigPrune,
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	keys := make([]settings.Key, 0, len(args))
	for _, a := range args {
		keys = append(keys, settings.Key(a))
	}
	switch {
	case resetAll && len(keys) > 0:
		return errors.NewUserError(errors.Wrap(errors.ErrInvalidArgument, "keys given with --all"),
			"Pass either keys or --all")
	case resetAll:
		keys = settings.Keys()
	case len(keys) == 0:
		return errors.NewUserError(errors.Wrap(errors.ErrInvalidArgument, "no keys"),
			"Pass one or more keys, or --all")
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if resetAll {
		ok, err := confirm(cmd, "Reset all settings to their defaults?")
		if err != nil || !ok {
			return err
		}
		if err := snapshot(cmd, store); err != nil {
			return err
		}
	}

	for _, k := range keys {
		if err := store.Reset(k); err != nil {
			return errors.NewUserError(err, "Run 'tunedeck config list' to see available keys")
		}
	}

	if err := saveStore(store); err != nil {
		return err
	}

	if !quiet {
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s\n", k)
		}
	}
	return nil
}

func runConfigPrune(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	removed, err := store.Prune()
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to prune")
		}
		return nil
	}

	ok, err := confirm(cmd, fmt.Sprintf("Remove %d unknown setting(s)?", len(removed)))
	if err != nil || !ok {
		return err
	}
	if err := snapshot(cmd, store); err != nil {
		return err
	}

	if err := saveStore(store); err != nil {
		return err
	}

	if !quiet {
		for _, k := range removed {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", k)
		}
	}
	return nil
}

// confirm asks question on an interactive terminal. Without a terminal, or
// with --yes, it answers yes.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	if assumeYes || !isInteractive() {
		return true, nil
	}
	ok, err := prompt.NewConfirmer(cmd.InOrStdin(), cmd.OutOrStdout()).Confirm(question, false)
	if errors.Is(err, prompt.ErrCancelled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
	}
	return ok, nil
}
