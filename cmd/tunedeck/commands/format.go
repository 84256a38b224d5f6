package commands

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/pkg/fileutil"
)

// outputFormat selects the encoding used by list and export.
type outputFormat string

const (
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
	formatTOML outputFormat = "toml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatJSON, formatYAML, formatTOML:
		return f, nil
	case "yml":
		return formatYAML, nil
	}
	return "", errors.NewUserError(
		errors.Wrapf(errors.ErrInvalidArgument, "unknown format %q", s),
		"Use one of: json, yaml, toml")
}

// formatFromPath infers the format from a file extension, defaulting to JSON.
func formatFromPath(path string) outputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	default:
		return formatJSON
	}
}

// encodeSettings renders a settings map in format f.
func encodeSettings(f outputFormat, values map[string]any) ([]byte, error) {
	switch f {
	case formatYAML:
		return fileutil.MarshalYAML(values)
	case formatTOML:
		// TOML has no null.
		return fileutil.MarshalTOML(dropNulls(values))
	default:
		return fileutil.MarshalJSON(values)
	}
}

func dropNulls(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			continue
		case map[string]any:
			out[k] = dropNulls(val)
		default:
			out[k] = v
		}
	}
	return out
}
