package client

import (
	"fmt"
	"sync"
)

// Session токен администратора
// Создается при входе, уничтожается при выходе или первом 401
type Session struct {
	mu    sync.RWMutex
	store TokenStore
	data  *SessionData
}

// NewSession поднимает сохраненную сессию из store
func NewSession(store TokenStore) (*Session, error) {
	data, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &Session{store: store, data: data}, nil
}

// Active есть ли токен
func (s *Session) Active() bool {
	return s.Token() != ""
}

// Token текущий токен или пустая строка
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return ""
	}
	return s.data.Token
}

// Username логин, под которым выполнен вход
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return ""
	}
	return s.data.Username
}

// Start сохраняет новую сессию
func (s *Session) Start(data SessionData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.data = &data
	return nil
}

// Destroy удаляет сессию (в памяти сбрасывается даже при ошибке store)
func (s *Session) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
