// Package record persists the toolchain record and manages its backup
// lifecycle across a provisioning run.
package record

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

// DefaultFilename is the record location relative to the working directory.
const DefaultFilename = "cuprov.conf"

const backupSuffix = ".bak"

const header = "# Generated by cuprov. Do not edit."

// Store implements ports.RecordStore with a flat text file, one binding per
// line in `key = "value"` form.
type Store struct {
	path string
}

// NewStore creates a new Store backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the record location.
func (s *Store) Path() string {
	return s.path
}

// Load parses the persisted record. Returns nil, nil when no record exists.
func (s *Store) Load() (map[string]string, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrRecordReadFailed, err.Error()), "path", s.path)
	}

	bindings := make(map[string]string)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, rawValue, found := strings.Cut(line, "=")
		if !found {
			return nil, zerr.With(zerr.With(domain.ErrRecordMalformed, "path", s.path), "line", i+1)
		}
		value, err := strconv.Unquote(strings.TrimSpace(rawValue))
		if err != nil {
			return nil, zerr.With(zerr.With(domain.ErrRecordMalformed, "path", s.path), "line", i+1)
		}
		bindings[strings.TrimSpace(key)] = value
	}
	return bindings, nil
}

// Stash moves the current record aside as a backup.
func (s *Store) Stash() error {
	if err := os.Rename(s.path, s.path+backupSuffix); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(domain.ErrRecordWriteFailed, err.Error()), "path", s.path)
	}
	return nil
}

// Restore moves the stashed backup back into place.
func (s *Store) Restore() error {
	if err := os.Rename(s.path+backupSuffix, s.path); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(domain.ErrRecordWriteFailed, err.Error()), "path", s.path)
	}
	return nil
}

// Commit atomically writes cfg as the new record and drops any backup.
func (s *Store) Commit(cfg *domain.ToolchainConfig) error {
	bindings := cfg.Bindings()

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, key := range domain.RecordKeys() {
		fmt.Fprintf(&b, "%s = %s\n", key, strconv.Quote(bindings[key]))
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrRecordWriteFailed, err.Error()), "path", s.path)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(domain.ErrRecordWriteFailed, err.Error()), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(domain.ErrRecordWriteFailed, err.Error()), "path", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(domain.ErrRecordWriteFailed, err.Error()), "path", s.path)
	}

	if err := os.Remove(s.path + backupSuffix); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(domain.ErrRecordWriteFailed, err.Error()), "path", s.path+backupSuffix)
	}
	return nil
}

// Discard removes the record and any backup.
func (s *Store) Discard() error {
	for _, path := range []string{s.path, s.path + backupSuffix} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return zerr.With(zerr.Wrap(domain.ErrRecordWriteFailed, err.Error()), "path", path)
		}
	}
	return nil
}
