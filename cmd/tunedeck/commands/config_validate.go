package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/settings"
	"github.com/thoreinstein/tunedeck/internal/validator"
)

// validateJSON holds the value of the config validate --json flag.
var validateJSON bool

func init() {
	configValidateCmd.Flags().BoolVar(&validateJSON, "json", false, "output as JSON")
	configCmd.AddCommand(configValidateCmd)
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check settings for values the player cannot use",
	Long: `Check every setting against its type and allowed values.

Loading accepts any value, so hand edits can leave settings the player
will misbehave with. Unknown keys are reported as warnings.`,
	Example: `  # Check settings
  tunedeck config validate

  # Machine-readable report
  tunedeck config validate --json`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	result, err := validateStore(store)
	if err != nil {
		return err
	}

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if !quiet || validateJSON || result.HasErrors() {
		if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
			return err
		}
	}

	if errs := result.Errors(); len(errs) > 0 {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrInvalidConfig, "%d invalid setting(s)", len(errs)),
			"Run 'tunedeck config reset <key>' to restore a default")
	}
	return nil
}

// validateStore checks the loaded document. Keys whose value has the
// wrong type are reported individually.
func validateStore(store *settings.Store) (*validator.Result, error) {
	result := &validator.Result{}

	keys, err := store.Keys()
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if !settings.Known(k) {
			result.AddWarning(string(k), "not a known setting; remove with 'tunedeck config prune'", nil)
		}
	}

	for _, k := range settings.Keys() {
		err := settings.CheckType(store, k)
		switch {
		case err == nil:
			if v, _ := store.Value(k); v == nil {
				result.AddInfo(string(k), "explicit null; the player uses its built-in default", nil)
			}
		case errors.Is(err, settings.ErrKeyNotSet):
			result.AddError(string(k), "missing", nil)
		case errors.Is(err, settings.ErrTypeMismatch):
			val, _ := store.Value(k)
			result.AddError(string(k), "wrong type", val)
		default:
			return nil, err
		}
	}

	if !result.HasErrors() {
		cfg, err := store.Config()
		if err != nil {
			return nil, err
		}
		for _, verr := range settings.Validate(cfg) {
			var fe *settings.FieldError
			if errors.As(verr, &fe) {
				result.AddError(string(fe.Key), fe.Err.Error(), fe.Value)
				continue
			}
			result.AddError("", verr.Error(), nil)
		}
	}

	result.Sort()
	return result, nil
}
