// Package backup keeps timestamped snapshots of the settings document.
//
// Each snapshot is a directory holding a copy of the file and a manifest:
//
//	<settings dir>/backups/
//	└── {timestamp}/
//	    ├── manifest.json
//	    └── config.json
//
// The manifest records the source path, permissions and a SHA256 checksum.
// [Manager.Restore] verifies the checksum before writing the copy back and
// returns [ErrBackupCorrupted] on mismatch.
//
// [Manager.Backup] prunes old snapshots beyond the retention count
// (default 5) after every successful backup.
package backup
