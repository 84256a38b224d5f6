package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/tunedeck/internal/errors"
)

// MaxFileSize is the maximum file size we'll read (1MB).
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file up to MaxFileSize.
// It returns ErrFileTooLarge if the file is larger than the limit.
func ReadFileWithLimit(path string) ([]byte, error) {
	data, ok, err := ReadFileIfExists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(os.ErrNotExist, "opening %s", path)
	}
	return data, nil
}

// ReadFileIfExists is ReadFileWithLimit that reports a missing file as
// ok == false instead of an error.
func ReadFileIfExists(path string) (data []byte, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast when the size is already known to be too large.
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, true, ErrFileTooLarge
	}

	data, err = io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, true, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, true, ErrFileTooLarge
	}

	return data, true, nil
}
