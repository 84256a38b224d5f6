package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/tunedeck/internal/keymod"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "cmd on darwin",
			args: []string{"keys", "--meta", "--platform", "darwin"},
			want: "Platform:  darwin\nPrimary:   true  (Cmd)\nSecondary: false (Ctrl)\n",
		},
		{
			name: "ctrl on darwin",
			args: []string{"keys", "--ctrl", "--platform", "mac"},
			want: "Platform:  mac\nPrimary:   false (Cmd)\nSecondary: true  (Ctrl)\n",
		},
		{
			name: "meta on win32",
			args: []string{"keys", "--meta", "--platform", "win32"},
			want: "Platform:  win32\nPrimary:   false (Ctrl)\nSecondary: true  (Win)\n",
		},
		{
			name: "ctrl on linux",
			args: []string{"keys", "--ctrl", "--shift", "--platform", "linux"},
			want: "Platform:  linux\nPrimary:   true  (Ctrl)\nSecondary: false (Super)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testEnv(t)
			out, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestKeys_JSON(t *testing.T) {
	testEnv(t)

	out, err := runCLI(t, "keys", "--json", "--meta", "--alt", "--platform", "windows")
	require.NoError(t, err)

	var got keysResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, keysResult{
		Platform:       "windows",
		Event:          keymod.Event{Meta: true, Alt: true},
		Primary:        false,
		Secondary:      true,
		PrimaryLabel:   "Ctrl",
		SecondaryLabel: "Win",
	}, got)
}

func TestKeys_DefaultPlatform(t *testing.T) {
	testEnv(t)

	out, err := runCLI(t, "keys", "--json")
	require.NoError(t, err)

	var got keysResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, keymod.Current(), got.Platform)
	assert.False(t, got.Primary)
	assert.False(t, got.Secondary)
}
