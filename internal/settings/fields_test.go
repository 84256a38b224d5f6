package settings

import (
	"slices"
	"testing"

	"github.com/thoreinstein/tunedeck/internal/display"
)

// Every Config field must have a registered key and vice versa.
func TestKeysMatchConfig(t *testing.T) {
	doc, err := encodeDocument(Defaults(display.Rectangle{Width: 100, Height: 100}))
	if err != nil {
		t.Fatal(err)
	}

	keys := Keys()
	if len(keys) != len(doc) {
		t.Fatalf("len(Keys()) = %d, Config has %d fields", len(keys), len(doc))
	}
	for _, k := range keys {
		if _, ok := doc[k]; !ok {
			t.Errorf("key %q has no Config field", k)
		}
	}
}

func TestKeys_ReturnsCopy(t *testing.T) {
	keys := Keys()
	keys[0] = "mutated"
	if Keys()[0] == "mutated" {
		t.Error("Keys() must return a copy")
	}
}

func TestKnown(t *testing.T) {
	if !Known("audioVolume") {
		t.Error("audioVolume should be known")
	}
	if Known("legacyLayout") {
		t.Error("legacyLayout should not be known")
	}
	if !slices.Contains(Keys(), BoundsField.Key()) {
		t.Error("bounds missing from Keys()")
	}
}

func TestFieldString(t *testing.T) {
	if got := AudioRepeat.String(); got != "audioRepeat" {
		t.Errorf("String() = %q", got)
	}
}
