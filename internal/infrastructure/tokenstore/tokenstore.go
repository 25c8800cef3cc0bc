// Package tokenstore persists the session bearer token between runs, the
// CLI-world equivalent of the mobile app's single AsyncStorage key.
package tokenstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultFileName = "housingctl/token"

// FileStore keeps the token in a single file with owner-only permissions.
// The zero value is not usable; construct with New.
type FileStore struct {
	path string

	mu     sync.Mutex
	cached string
	loaded bool
}

// New returns a FileStore at path. When path is empty the token lives under
// the user config directory (os.UserConfigDir), falling back to the working
// directory when that cannot be resolved.
func New(path string) *FileStore {
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, defaultFileName)
		} else {
			path = ".housing-token"
		}
	}
	return &FileStore{path: path}
}

// Token returns the stored token, or "" when none is present. The file is
// read once and cached; Save and Clear keep the cache in sync.
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		b, err := os.ReadFile(s.path)
		if err == nil {
			s.cached = strings.TrimSpace(string(b))
		}
		s.loaded = true
	}
	return s.cached
}

func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return err
	}
	s.cached = token
	s.loaded = true
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = ""
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
