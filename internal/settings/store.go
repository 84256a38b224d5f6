package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"path/filepath"
	"slices"

	"github.com/thoreinstein/tunedeck/internal/display"
	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/logging"
	"github.com/thoreinstein/tunedeck/internal/paths"
	"github.com/thoreinstein/tunedeck/pkg/fileutil"
)

// FilePerm is the permission of the settings document.
const FilePerm = 0o600

// Sentinel errors returned by Store.
var (
	// ErrUninitialized is returned by accessors called before Load succeeded.
	ErrUninitialized = errors.New("settings not loaded")

	// ErrUnknownKey indicates a key outside the default key set.
	ErrUnknownKey = errors.New("unknown settings key")

	// ErrKeyNotSet indicates the key is absent from the in-memory document.
	ErrKeyNotSet = errors.New("settings key not set")

	// ErrTypeMismatch indicates a value does not decode into the key's type.
	ErrTypeMismatch = errors.New("settings value has wrong type")

	// ErrNotObject indicates the settings file is not a JSON object.
	ErrNotObject = errors.New("settings document is not a JSON object")
)

// document is the in-memory form of the settings file. Values are kept as
// raw JSON so entries are returned exactly as they were read.
type document map[Key]json.RawMessage

// Store owns the settings document at a fixed path.
type Store struct {
	path    string
	display display.Provider

	loaded   bool
	doc      document
	defaults document
	seeded   []Key
}

// New returns an unloaded Store for the document at path. An empty path
// selects paths.SettingsFile(); a nil provider selects display.Default().
func New(path string, provider display.Provider) *Store {
	if path == "" {
		path = paths.SettingsFile()
	}
	if provider == nil {
		provider = display.Default()
	}
	return &Store{
		path:    path,
		display: provider,
	}
}

// Open returns a Store that has already been loaded.
func Open(ctx context.Context, path string, provider display.Provider) (*Store, error) {
	s := New(path, provider)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the settings document.
func (s *Store) Path() string {
	return s.path
}

// Loaded reports whether Load has completed successfully.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Load reads the document, creating it if it does not exist, and inserts
// the default value of every known key that is missing. The merged
// document is written back only when at least one key was inserted, so
// loading a complete document performs no write.
//
// Defaults are computed at call time; the window position depends on the
// primary display's work area.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := logging.FromContext(ctx).With("path", s.path)

	area, err := s.display.PrimaryWorkArea()
	if err != nil {
		return errors.Wrap(err, "reading primary display work area")
	}
	defaults, err := encodeDocument(Defaults(area))
	if err != nil {
		return err
	}

	doc, _, err := s.read()
	if err != nil {
		return err
	}

	var seeded []Key
	for _, k := range ordered {
		if _, ok := doc[k]; !ok {
			doc[k] = defaults[k]
			seeded = append(seeded, k)
		}
	}

	if len(seeded) > 0 {
		logger.Info("seeding default settings", "keys", seeded)
		if err := s.write(doc); err != nil {
			return err
		}
	} else {
		logger.Debug("settings loaded", "keys", len(doc))
	}

	s.doc = doc
	s.defaults = defaults
	s.seeded = seeded
	s.loaded = true
	return nil
}

// Seeded returns the keys inserted by the most recent Load.
func (s *Store) Seeded() []Key {
	return slices.Clone(s.seeded)
}

// Value returns the stored value for k decoded without a target type, so
// strings, float64 numbers, bools, nil, []any and map[string]any come back
// exactly as persisted. Keys outside the default set can be read too.
func (s *Store) Value(k Key) (any, error) {
	raw, err := s.raw(k)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", k)
	}
	return v, nil
}

// All returns a copy of the whole document with values decoded as in Value.
func (s *Store) All() (map[string]any, error) {
	if !s.loaded {
		return nil, ErrUninitialized
	}
	out := make(map[string]any, len(s.doc))
	for k, raw := range s.doc {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, errors.Wrapf(err, "decoding %s", k)
		}
		out[string(k)] = v
	}
	return out, nil
}

// Keys returns the keys currently in the document, sorted.
func (s *Store) Keys() ([]Key, error) {
	if !s.loaded {
		return nil, ErrUninitialized
	}
	return slices.Sorted(maps.Keys(s.doc)), nil
}

// Get returns the value of f decoded into its Go type. A value persisted
// with a different type yields ErrTypeMismatch.
func Get[T any](s *Store, f Field[T]) (T, error) {
	var v T
	raw, err := s.raw(f.key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, errors.Wrapf(ErrTypeMismatch, "%s: %v", f.key, err)
	}
	return v, nil
}

// Set updates the in-memory value of f. Call Save to persist it.
func Set[T any](s *Store, f Field[T], v T) error {
	if !s.loaded {
		return ErrUninitialized
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", f.key)
	}
	s.doc[f.key] = raw
	return nil
}

// SetJSON updates the in-memory value of a known key from raw JSON. The
// value must decode into the key's type.
func (s *Store) SetJSON(k Key, raw []byte) error {
	if !s.loaded {
		return ErrUninitialized
	}
	spec, ok := registry[k]
	if !ok {
		return errors.Wrapf(ErrUnknownKey, "%q", k)
	}
	if !json.Valid(raw) {
		return errors.Wrapf(ErrTypeMismatch, "%s: value is not valid JSON", k)
	}
	if err := spec.check(raw); err != nil {
		return errors.Wrapf(ErrTypeMismatch, "%s: %v", k, err)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return errors.Wrapf(err, "compacting %s", k)
	}
	s.doc[k] = buf.Bytes()
	return nil
}

// CheckType reports ErrTypeMismatch when the stored value of known key k
// does not decode into the key's type.
func CheckType(s *Store, k Key) error {
	spec, ok := registry[k]
	if !ok {
		return errors.Wrapf(ErrUnknownKey, "%q", k)
	}
	raw, err := s.raw(k)
	if err != nil {
		return err
	}
	if err := spec.check(raw); err != nil {
		return errors.Wrapf(ErrTypeMismatch, "%s: %v", k, err)
	}
	return nil
}

// Config decodes the whole document into a Config.
func (s *Store) Config() (Config, error) {
	if !s.loaded {
		return Config{}, ErrUninitialized
	}
	return decodeConfig(s.doc)
}

func decodeConfig(doc document) (Config, error) {
	var cfg Config
	data, err := json.Marshal(doc)
	if err != nil {
		return cfg, errors.Wrap(err, "encoding settings")
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(ErrTypeMismatch, err.Error())
	}
	return cfg, nil
}

// Update decodes the document into a Config, applies fn, and writes every
// known key back into memory. Keys outside the default set are untouched.
func (s *Store) Update(fn func(*Config)) error {
	cfg, err := s.Config()
	if err != nil {
		return err
	}
	fn(&cfg)
	doc, err := encodeDocument(cfg)
	if err != nil {
		return err
	}
	maps.Copy(s.doc, doc)
	return nil
}

// Reset restores k to the default computed by the last Load.
func (s *Store) Reset(k Key) error {
	if !s.loaded {
		return ErrUninitialized
	}
	def, ok := s.defaults[k]
	if !ok {
		return errors.Wrapf(ErrUnknownKey, "%q", k)
	}
	s.doc[k] = def
	return nil
}

// Prune removes every key outside the default set from memory and returns
// the removed keys, sorted. Load never prunes.
func (s *Store) Prune() ([]Key, error) {
	if !s.loaded {
		return nil, ErrUninitialized
	}
	var removed []Key
	for k := range s.doc {
		if !Known(k) {
			removed = append(removed, k)
		}
	}
	slices.Sort(removed)
	for _, k := range removed {
		delete(s.doc, k)
	}
	return removed, nil
}

// Save writes the full in-memory document to disk, replacing the file.
func (s *Store) Save() error {
	if !s.loaded {
		return ErrUninitialized
	}
	return s.write(s.doc)
}

func (s *Store) write(doc document) error {
	if err := paths.EnsureDir(filepath.Dir(s.path), 0); err != nil {
		return err
	}
	if err := fileutil.AtomicWriteJSONWithPerm(s.path, doc, FilePerm); err != nil {
		return errors.Wrapf(err, "saving settings to %s", s.path)
	}
	return nil
}

// Reload re-reads the document from disk, discarding unsaved changes.
// Defaults are not re-applied.
func (s *Store) Reload() error {
	if !s.loaded {
		return ErrUninitialized
	}
	doc, ok, err := s.read()
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "settings file %s", s.path)
	}
	s.doc = doc
	return nil
}

func (s *Store) raw(k Key) (json.RawMessage, error) {
	if !s.loaded {
		return nil, ErrUninitialized
	}
	raw, ok := s.doc[k]
	if !ok {
		return nil, errors.Wrapf(ErrKeyNotSet, "%q", k)
	}
	return raw, nil
}

// read loads the document from disk. A missing or blank file yields an
// empty document and ok == false for the missing case.
func (s *Store) read() (document, bool, error) {
	data, ok, err := fileutil.ReadFileIfExists(s.path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading settings from %s", s.path)
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, ok, errors.Wrapf(err, "parsing settings from %s", s.path)
	}
	return doc, ok, nil
}

func decodeDocument(data []byte) (document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return document{}, nil
	}
	if data[0] != '{' {
		return nil, ErrNotObject
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = document{}
	}
	return doc, nil
}

func encodeDocument(cfg Config) (document, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "encoding settings")
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding settings")
	}
	return doc, nil
}
