package backup

import (
	"io/fs"
	"time"

	"github.com/thoreinstein/tunedeck/internal/errors"
)

// ManifestVersion is the manifest format version.
const ManifestVersion = 1

// DefaultRetentionCount is the number of snapshots kept by default.
const DefaultRetentionCount = 5

// DirName is the name of the snapshot directory next to the settings file.
const DirName = "backups"

const manifestName = "manifest.json"

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates no snapshot exists, or the requested one does not.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrBackupCorrupted indicates a snapshot's checksum does not match its manifest.
	ErrBackupCorrupted = errors.New("backup corrupted")

	// ErrNothingToBackup indicates the source file does not exist.
	ErrNothingToBackup = errors.New("nothing to back up")
)

// Manifest describes one snapshot. It is stored as manifest.json.
type Manifest struct {
	Version    int         `json:"version"`
	CreatedAt  time.Time   `json:"created_at"`
	Source     string      `json:"source"`
	FileName   string      `json:"file_name"`
	SHA256Hash string      `json:"sha256_hash"`
	Size       int64       `json:"size"`
	Mode       fs.FileMode `json:"mode"`
	AppVersion string      `json:"app_version,omitempty"`

	// ID is the directory name (e.g. 20260123T100712). Not stored.
	ID string `json:"-"`
}
