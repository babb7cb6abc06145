package bankbook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the persistence contract the manager relies on. The concrete
// implementation is DatasetStore, but the interface allows alternative
// backends (in-memory, remote) for testing.
//
// Save overwrites the entire persisted dataset; there are no partial or
// merge semantics. Callers must load, mutate a full copy, then save.
// There is no locking either: two concurrent writers race and the last
// save silently wins.
type Store interface {
	Load() (*Dataset, error)
	Save(*Dataset) error
	Reset() error
}

// StorageError reports a failure of the persistence medium: an unreadable
// or unwritable file, or persisted content that does not parse as a
// dataset document.
type StorageError struct {
	Op   string // "load", "save" or "reset"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not %s dataset at %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// DatasetStore persists the dataset as a single JSON document at a fixed
// file path given at construction time.
type DatasetStore struct {
	path string
}

// NewDatasetStore returns a store bound to the given file path. The file
// is not touched until the first Load or Save.
func NewDatasetStore(path string) *DatasetStore {
	return &DatasetStore{path: path}
}

// Path returns the file this store reads and writes.
func (s *DatasetStore) Path() string { return s.path }

// DefaultPath computes the conventional per-user location of the data
// file, creating its directory on demand.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine the user config directory: %w", err)
	}
	dir := filepath.Join(base, "bankbook")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create %q: %w", dir, err)
	}
	return filepath.Join(dir, "data.json"), nil
}

// Load reads the current on-disk dataset. The first time it is used, when
// no prior data exists, it seeds the file with the empty default dataset
// and returns it.
func (s *DatasetStore) Load() (*Dataset, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		d := NewDataset()
		if err := s.Save(d); err != nil {
			return nil, err
		}
		return d, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	d, err := DecodeDataset(bytes.NewReader(data))
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	return d, nil
}

// Save durably overwrites the persisted dataset with the given one. The
// document is written to a temporary file first and moved into place, so
// a crash mid-write cannot leave a half-written dataset behind.
func (s *DatasetStore) Save(d *Dataset) error {
	var buf bytes.Buffer
	if err := EncodeDataset(&buf, d); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &StorageError{Op: "save", Path: s.path, Err: err}
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Reset sets the persisted dataset back to the empty default, discarding
// all data irreversibly.
func (s *DatasetStore) Reset() error {
	if err := s.Save(NewDataset()); err != nil {
		var serr *StorageError
		if errors.As(err, &serr) {
			return &StorageError{Op: "reset", Path: serr.Path, Err: serr.Err}
		}
		return err
	}
	return nil
}
