package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/settings"
)

// listFormat holds the value of the config list --format flag.
var listFormat string

func init() {
	configCmd.PersistentFlags().StringVar(&listFormat, "format", "yaml", "output format: json, yaml, toml")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage player settings",
	Long: `Manage the player settings stored in <app data dir>/config.json.

Without a subcommand, lists all settings.`,
	Example: `  # List all settings
  tunedeck config

  # Get a specific value
  tunedeck config get audioVolume

  # Set a value
  tunedeck config set audioRepeat all

See Also: tunedeck config reset, tunedeck config validate`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a setting",
	Long: `Get a single setting by key.

Strings are printed as-is; other values are printed as JSON. Without a key
on an interactive terminal, a fuzzy picker lists every key.`,
	Example: `  # Get the theme
  tunedeck config get theme

  # Get the window bounds
  tunedeck config get bounds

See Also: tunedeck config set, tunedeck config list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Long: `Set a setting and save the document.

The value is parsed as JSON when it matches the setting's type, otherwise
it is stored as a string. Values the player cannot use (volume outside
0-1, unknown repeat mode, ...) are rejected.`,
	Example: `  # Set the volume
  tunedeck config set audioVolume 0.4

  # Set the library sort
  tunedeck config set librarySort '{"by":"album","order":"dsc"}'

See Also: tunedeck config get, tunedeck config reset`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Long:  `List all settings, including keys the current version does not know.`,
	Example: `  # List as YAML
  tunedeck config list

  # List as JSON
  tunedeck config list --format json

See Also: tunedeck config get, tunedeck config export`,
	RunE: runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if options == nil {
			return errors.NewSystemError(errors.New("CLI configuration not loaded"), "")
		}
		fmt.Fprintln(cmd.OutOrStdout(), options.SettingsFile)
		return nil
	},
}

// pickKey chooses a key interactively. Replaced in tests.
var pickKey = fuzzyPickKey

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	var key settings.Key
	if len(args) == 1 {
		key = settings.Key(args[0])
	} else {
		if !isInteractive() {
			return errors.NewUserError(
				errors.Wrap(errors.ErrInvalidArgument, "missing key"),
				"Pass a key, e.g. tunedeck config get theme")
		}
		key, err = pickKey(store)
		if err != nil {
			return err
		}
		if key == "" {
			return nil
		}
	}

	val, err := store.Value(key)
	if err != nil {
		if errors.Is(err, settings.ErrKeyNotSet) {
			fmt.Fprintln(cmd.OutOrStdout(), "not set")
			return nil
		}
		return err
	}

	return printValue(cmd.OutOrStdout(), val)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := settings.Key(args[0])
	value := args[1]

	if !settings.Known(key) {
		return errors.NewUserError(
			errors.Wrapf(settings.ErrUnknownKey, "%q", key),
			"Run 'tunedeck config list' to see available keys")
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if err := setFromArg(store, key, value); err != nil {
		return errors.NewUserError(err, "")
	}

	if err := store.ValidateKey(key); err != nil {
		return errors.NewUserError(err, "")
	}

	if err := saveStore(store); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = ", key)
		val, _ := store.Value(key)
		return printValue(cmd.OutOrStdout(), val)
	}
	return nil
}

// setFromArg stores value as JSON if it fits the key's type, else as a string.
func setFromArg(store *settings.Store, key settings.Key, value string) error {
	err := store.SetJSON(key, []byte(value))
	if err == nil || !errors.Is(err, settings.ErrTypeMismatch) {
		return err
	}
	quoted, mErr := json.Marshal(value)
	if mErr != nil {
		return errors.Wrap(mErr, "encoding value")
	}
	if strErr := store.SetJSON(key, quoted); strErr != nil {
		return err
	}
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	format, err := parseFormat(listFormat)
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	values, err := store.All()
	if err != nil {
		return err
	}

	data, err := encodeSettings(format, values)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// printValue prints strings bare and everything else as compact JSON.
func printValue(w io.Writer, val any) error {
	if s, ok := val.(string); ok {
		fmt.Fprintln(w, s)
		return nil
	}
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "encoding value")
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// isInteractive reports whether stdin and stdout are terminals. Replaced in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// fuzzyPickKey lets the user choose a key, previewing its current value.
// It returns an empty key when the user aborts.
func fuzzyPickKey(store *settings.Store) (settings.Key, error) {
	keys, err := store.Keys()
	if err != nil {
		return "", err
	}

	idx, err := fuzzyfinder.Find(
		keys,
		func(i int) string {
			return string(keys[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			val, err := store.Value(keys[i])
			if err != nil {
				return err.Error()
			}
			data, err := json.MarshalIndent(val, "", "  ")
			if err != nil {
				return fmt.Sprint(val)
			}
			known := "yes"
			if !settings.Known(keys[i]) {
				known = "no (stale; removed by 'tunedeck config prune')"
			}
			return fmt.Sprintf("Key: %s\nKnown: %s\n\n%s", keys[i], known, data)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive key selection failed")
	}

	return keys[idx], nil
}
