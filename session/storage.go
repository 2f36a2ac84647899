package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenStorage persists the session token between runs. Exactly one
// value survives a restart: the token string.
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStorage keeps the token in a single file, the desktop
// equivalent of localStorage's fixed "token" key.
type FileTokenStorage struct {
	path string
}

// NewFileTokenStorage stores the token at path. An empty path falls back
// to <user config dir>/pizza-delivery-app/token.
func NewFileTokenStorage(path string) *FileTokenStorage {
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "pizza-delivery-app", "token")
		} else {
			path = filepath.Join(".", ".pizza-token")
		}
	}
	return &FileTokenStorage{path: path}
}

func (s *FileTokenStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStorage) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileTokenStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
