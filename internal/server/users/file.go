package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kshitij230106/weather-dashboard-backend/internal/common"
	"github.com/kshitij230106/weather-dashboard-backend/internal/filex"
)

// FileStore keeps the user map in a single pretty-printed JSON file, keyed
// by normalized email. The file is created lazily on the first Save and is
// meant to stay human-editable.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (map[string]*User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Bootstrap case: no registrations yet.
			return map[string]*User{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	users := map[string]*User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrStorageCorrupt, s.path, err)
	}

	return users, nil
}

func (s *FileStore) Save(ctx context.Context, users map[string]*User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}

	if err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}

	// Write to a temp file in the same directory, then rename over the
	// target so readers never observe a partial snapshot.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", s.path, err)
	}

	return nil
}
