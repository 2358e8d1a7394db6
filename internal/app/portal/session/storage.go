package session

import (
	"errors"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// TokenStorage persists the token pair across process restarts. It is the
// localStorage analog for the CLI portal.
type TokenStorage interface {
	Save(accessToken, refreshToken string) error
	Load() (accessToken, refreshToken string, err error)
	Clear() error
}

type storedTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// FileStorage keeps the token pair in a JSON file with owner-only
// permissions.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Save(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(storedTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStorage) Load() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", nil
		}
		return "", "", err
	}

	var tokens storedTokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return "", "", err
	}
	return tokens.AccessToken, tokens.RefreshToken, nil
}

func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
