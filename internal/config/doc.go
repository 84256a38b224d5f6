// Package config loads the options of the tunedeck CLI itself.
//
// These options are distinct from the player settings managed by package
// settings: they only control where the CLI finds the settings document,
// how it logs, and which screen geometry it assumes when seeding defaults.
//
// # Configuration File
//
// The file is <per-user app data dir>/cli.yaml:
//
//	settings_file: ~/music/tunedeck.json   # optional
//	log_format: text                       # text or json
//	display:
//	  width: 2560
//	  height: 1400
//
// Every key can be overridden from the environment with the TUNEDECK_
// prefix, using underscores for nesting (TUNEDECK_DISPLAY_WIDTH).
// TUNEDECK_CONFIG_DIR changes the directory searched for cli.yaml.
//
// # Loading
//
//	config.Init()
//	opts, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	store := settings.New(opts.SettingsFile, opts.DisplayProvider())
package config
