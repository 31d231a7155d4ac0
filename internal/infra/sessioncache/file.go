package sessioncache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/session"

	"github.com/goccy/go-yaml"
)

// FileStore keeps the record as YAML in a user-private file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(_ context.Context) (*session.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read session file")
	}
	if len(data) == 0 {
		return nil, nil
	}

	var rec session.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, errs.Mark(err, session.ErrMalformedRecord)
	}
	return &rec, nil
}

// Save writes through a temp file so a crash never leaves a half-written record.
func (s *FileStore) Save(_ context.Context, rec session.Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errs.Wrap(err, "failed to create session directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*.yaml")
	if err != nil {
		return errs.Wrap(err, "failed to create session file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errs.Wrap(err, "failed to write session file")
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return errs.Wrap(err, "failed to restrict session file")
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(err, "failed to write session file")
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(err, "failed to remove session file")
	}
	return nil
}

var (
	_ session.Store = (*FileStore)(nil)
	_ session.Store = (*RedisStore)(nil)
)
