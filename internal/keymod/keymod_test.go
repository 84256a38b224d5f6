package keymod

import (
	"runtime"
	"testing"
)

func TestIsPrimary(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		platform string
		want     bool
	}{
		{"meta on darwin", Event{Meta: true}, Darwin, true},
		{"meta on win32", Event{Meta: true}, Win32, false},
		{"ctrl on darwin", Event{Ctrl: true}, Darwin, false},
		{"ctrl on win32", Event{Ctrl: true}, Win32, true},
		{"ctrl on linux", Event{Ctrl: true}, Linux, true},
		{"meta on mac alias", Event{Meta: true}, Mac, true},
		{"meta on Darwin mixed case", Event{Meta: true}, "Darwin", true},
		{"both on windows", Event{Meta: true, Ctrl: true}, Windows, true},
		{"none on darwin", Event{Alt: true, Shift: true}, Darwin, false},
		{"ctrl on unknown platform", Event{Ctrl: true}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPrimary(tt.event, tt.platform); got != tt.want {
				t.Errorf("IsPrimary(%+v, %q) = %v, want %v", tt.event, tt.platform, got, tt.want)
			}
		})
	}
}

func TestIsSecondary(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		platform string
		want     bool
	}{
		{"meta on win32", Event{Meta: true}, Win32, true},
		{"meta on darwin", Event{Meta: true}, Darwin, false},
		{"ctrl on darwin", Event{Ctrl: true}, Darwin, true},
		{"ctrl on linux", Event{Ctrl: true}, Linux, false},
		{"meta on linux", Event{Meta: true}, Linux, true},
		{"nothing held", Event{}, Windows, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSecondary(tt.event, tt.platform); got != tt.want {
				t.Errorf("IsSecondary(%+v, %q) = %v, want %v", tt.event, tt.platform, got, tt.want)
			}
		})
	}
}

// On every platform exactly one of the two mappings reads each flag.
func TestPrimarySecondaryAreSwapped(t *testing.T) {
	events := []Event{{}, {Meta: true}, {Ctrl: true}, {Meta: true, Ctrl: true}}
	for _, platform := range []string{Darwin, Win32, Linux} {
		for _, e := range events {
			swapped := Event{Meta: e.Ctrl, Ctrl: e.Meta}
			if IsPrimary(e, platform) != IsSecondary(swapped, platform) {
				t.Errorf("%s: IsPrimary(%+v) != IsSecondary(%+v)", platform, e, swapped)
			}
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		platform      string
		wantPrimary   string
		wantSecondary string
	}{
		{Darwin, "Cmd", "Ctrl"},
		{Windows, "Ctrl", "Win"},
		{Win32, "Ctrl", "Win"},
		{Linux, "Ctrl", "Super"},
	}

	for _, tt := range tests {
		if got := PrimaryLabel(tt.platform); got != tt.wantPrimary {
			t.Errorf("PrimaryLabel(%q) = %q, want %q", tt.platform, got, tt.wantPrimary)
		}
		if got := SecondaryLabel(tt.platform); got != tt.wantSecondary {
			t.Errorf("SecondaryLabel(%q) = %q, want %q", tt.platform, got, tt.wantSecondary)
		}
	}
}

func TestCurrent(t *testing.T) {
	if Current() != runtime.GOOS {
		t.Errorf("Current() = %q, want %q", Current(), runtime.GOOS)
	}
}
