package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/paths"
	"github.com/thoreinstein/tunedeck/pkg/fileutil"
)

const idLayout = "20060102T150405"

// Manager creates, lists, restores and prunes snapshots in one directory.
type Manager struct {
	rootDir        string
	retentionCount int
	appVersion     string
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithRetentionCount sets the number of snapshots to keep. Values below 1
// are ignored.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// WithAppVersion records v in every manifest.
func WithAppVersion(v string) Option {
	return func(m *Manager) {
		m.appVersion = v
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// DirFor returns the snapshot directory for a settings file.
func DirFor(settingsPath string) string {
	return filepath.Join(filepath.Dir(settingsPath), DirName)
}

// NewManager creates a Manager storing snapshots under dir.
func NewManager(dir string, opts ...Option) *Manager {
	m := &Manager{
		rootDir:        dir,
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the snapshot directory.
func (m *Manager) Dir() string {
	return m.rootDir
}

// Backup copies src into a new snapshot and prunes snapshots beyond the
// retention count. A missing src yields ErrNothingToBackup.
func (m *Manager) Backup(src string) (*Manifest, error) {
	data, err := fileutil.ReadFileWithLimit(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrNothingToBackup, "%s", src)
		}
		return nil, errors.Wrapf(err, "reading %s", src)
	}
	info, err := os.Stat(src)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", src)
	}

	created := m.now().UTC()
	id, err := m.newID(created)
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(m.rootDir, id)

	manifest := &Manifest{
		Version:    ManifestVersion,
		CreatedAt:  created,
		Source:     src,
		FileName:   filepath.Base(src),
		SHA256Hash: hashBytes(data),
		Size:       int64(len(data)),
		Mode:       info.Mode().Perm(),
		AppVersion: m.appVersion,
		ID:         id,
	}

	if err := fileutil.AtomicWriteFile(filepath.Join(dir, manifest.FileName), data, manifest.Mode); err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.Wrap(err, "copying settings")
	}
	if err := fileutil.AtomicWriteJSONWithPerm(filepath.Join(dir, manifestName), manifest, 0o600); err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.Wrap(err, "writing manifest")
	}

	if err := m.Prune(m.retentionCount); err != nil {
		return manifest, errors.Wrap(err, "pruning old backups")
	}
	return manifest, nil
}

// newID reserves a snapshot directory named after t, adding a numeric
// suffix when a snapshot from the same second exists.
func (m *Manager) newID(t time.Time) (string, error) {
	if err := paths.EnsureDir(m.rootDir, 0); err != nil {
		return "", err
	}
	base := t.Format(idLayout)
	id := base
	for n := 2; ; n++ {
		err := os.Mkdir(filepath.Join(m.rootDir, id), paths.DefaultDirPerm)
		if err == nil {
			return id, nil
		}
		if !os.IsExist(err) {
			return "", errors.Wrap(err, "creating backup directory")
		}
		id = base + "-" + strconv.Itoa(n)
	}
}

// Restore verifies snapshot id and writes its copy to dst with the
// recorded permissions.
func (m *Manager) Restore(id, dst string) (*Manifest, error) {
	manifest, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	data, err := fileutil.ReadFileWithLimit(filepath.Join(m.rootDir, id, manifest.FileName))
	if err != nil {
		return nil, errors.Wrapf(err, "reading backup %s", id)
	}
	if hashBytes(data) != manifest.SHA256Hash {
		return nil, errors.Wrapf(ErrBackupCorrupted, "backup %s hash mismatch", id)
	}

	if err := paths.EnsureDir(filepath.Dir(dst), 0); err != nil {
		return nil, err
	}
	if err := fileutil.AtomicWriteFile(dst, data, manifest.Mode); err != nil {
		return nil, errors.Wrapf(err, "restoring %s", dst)
	}
	return manifest, nil
}

// List returns all snapshots, newest first. Directories without a
// readable manifest are skipped.
func (m *Manager) List() ([]Manifest, error) {
	entries, err := os.ReadDir(m.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(entry.Name())
		if err != nil {
			continue
		}
		manifests = append(manifests, *manifest)
	}

	if len(manifests) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return manifests, nil
}

// Prune removes all but the keep most recent snapshots.
func (m *Manager) Prune(keep int) error {
	if keep < 0 {
		return errors.New("keep must be non-negative")
	}

	manifests, err := m.List()
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil
		}
		return err
	}

	for i := keep; i < len(manifests); i++ {
		if err := os.RemoveAll(filepath.Join(m.rootDir, manifests[i].ID)); err != nil {
			return errors.Wrapf(err, "removing backup %s", manifests[i].ID)
		}
	}
	return nil
}

// Get returns the manifest of snapshot id.
func (m *Manager) Get(id string) (*Manifest, error) {
	if id == "" || id != filepath.Base(id) || id == "." || id == ".." {
		return nil, errors.Wrapf(ErrNoBackupsFound, "invalid backup ID %q", id)
	}

	data, err := os.ReadFile(filepath.Join(m.rootDir, id, manifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s not found", id)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}

	manifest.ID = id
	return &manifest, nil
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
