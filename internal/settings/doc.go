// Package settings persists the player's user settings as a single JSON
// document.
//
// A [Store] owns one file, normally <per-user app data dir>/config.json.
// [Store.Load] reads the file (creating it if needed), inserts a default for
// every known key the file does not have yet, and writes the merged
// document back only when something was inserted. Values already present
// are never replaced, even when they have the wrong type; keys the current
// version no longer knows are kept until [Store.Prune] is called.
//
// # Typed access
//
// Every known key is declared as a [Field] carrying its Go type:
//
//	store, err := settings.Open(ctx, paths.SettingsFile(), display.Default())
//	if err != nil {
//	    return err
//	}
//	vol, err := settings.Get(store, settings.AudioVolume) // float64
//	err = settings.Set(store, settings.AudioMuted, true)
//	err = store.Save()
//
// Set only changes memory; [Store.Save] writes the whole document and
// [Store.Reload] discards unsaved changes.
//
// # Lifecycle
//
// A Store returned by [New] is empty. Until Load succeeds every accessor
// returns [ErrUninitialized]. [Open] constructs and loads in one step.
//
// A Store is not safe for concurrent use; one process owns the file.
package settings
