package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// SessionData то, что сохраняется между запусками
type SessionData struct {
	Token     string `yaml:"token"`
	Username  string `yaml:"username,omitempty"`
	ExpiresAt string `yaml:"expires_at,omitempty"`
}

// TokenStore хранилище сессии на стороне клиента
// Load возвращает nil без ошибки, если сессии нет
type TokenStore interface {
	Load() (*SessionData, error)
	Save(data SessionData) error
	Clear() error
}

// MemoryStore хранит сессию в памяти процесса
type MemoryStore struct {
	mu   sync.Mutex
	data *SessionData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*SessionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	data := *s.data
	return &data, nil
}

func (s *MemoryStore) Save(data SessionData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = &data
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

// FileStore хранит сессию в YAML файле с правами 0600
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultSessionPath ~/.config/barberctl/session.yaml (или аналог ОС)
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "barberctl", "session.yaml"), nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (*SessionData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var data SessionData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", s.path, err)
	}
	if data.Token == "" {
		return nil, nil
	}
	return &data, nil
}

func (s *FileStore) Save(data SessionData) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
