package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/keymod"
)

var (
	keysEvent    keymod.Event
	keysPlatform string
	keysJSON     bool
)

func init() {
	keysCmd.Flags().BoolVar(&keysEvent.Meta, "meta", false, "meta (Cmd/Win/Super) key held")
	keysCmd.Flags().BoolVar(&keysEvent.Ctrl, "ctrl", false, "control key held")
	keysCmd.Flags().BoolVar(&keysEvent.Alt, "alt", false, "alt/option key held")
	keysCmd.Flags().BoolVar(&keysEvent.Shift, "shift", false, "shift key held")
	keysCmd.Flags().StringVar(&keysPlatform, "platform", "", "platform identifier (default: this OS)")
	keysCmd.Flags().BoolVar(&keysJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show how modifier keys map to shortcuts",
	Long: `Report whether the given modifiers count as the primary or secondary
shortcut modifier on a platform.

On macOS the primary modifier is Cmd (meta) and the secondary is Ctrl.
Everywhere else the primary is Ctrl and the secondary is the meta key.`,
	Example: `  # Is Cmd the primary modifier on macOS?
  tunedeck keys --meta --platform darwin

  # Same event on Windows
  tunedeck keys --meta --platform win32 --json`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

// keysResult is the output of the keys command.
type keysResult struct {
	Platform       string       `json:"platform"`
	Event          keymod.Event `json:"event"`
	Primary        bool         `json:"primary"`
	Secondary      bool         `json:"secondary"`
	PrimaryLabel   string       `json:"primaryLabel"`
	SecondaryLabel string       `json:"secondaryLabel"`
}

func runKeys(cmd *cobra.Command, _ []string) error {
	platform := keysPlatform
	if platform == "" {
		platform = keymod.Current()
	}

	res := keysResult{
		Platform:       platform,
		Event:          keysEvent,
		Primary:        keymod.IsPrimary(keysEvent, platform),
		Secondary:      keymod.IsSecondary(keysEvent, platform),
		PrimaryLabel:   keymod.PrimaryLabel(platform),
		SecondaryLabel: keymod.SecondaryLabel(platform),
	}

	w := cmd.OutOrStdout()
	if keysJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return errors.Wrap(err, "encoding result")
		}
		return nil
	}

	fmt.Fprintf(w, "Platform:  %s\n", res.Platform)
	fmt.Fprintf(w, "Primary:   %-5t (%s)\n", res.Primary, res.PrimaryLabel)
	fmt.Fprintf(w, "Secondary: %-5t (%s)\n", res.Secondary, res.SecondaryLabel)
	return nil
}
