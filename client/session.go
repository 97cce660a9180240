package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the session token across restarts. An empty string
// from Load means no stored token.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file, the terminal equivalent
// of the browser's one named localStorage key.
type FileTokenStore struct {
	Path string
}

// DefaultTokenPath returns the token file location under the user config
// directory.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shoplocal", "token"), nil
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryTokenStore is an in-process TokenStore for tests.
type MemoryTokenStore struct {
	token string
}

func (s *MemoryTokenStore) Load() (string, error)      { return s.token, nil }
func (s *MemoryTokenStore) Save(token string) error    { s.token = token; return nil }
func (s *MemoryTokenStore) Clear() error               { s.token = ""; return nil }

// Session is the single authority over the bearer token. Only the Session
// itself mutates the token; other components read it through Token. The
// OnChange hook lets a UI toggle between anonymous and authenticated views.
type Session struct {
	mu       sync.RWMutex
	token    string
	store    TokenStore
	OnChange func(authenticated bool)
}

// NewSession builds a Session rehydrated from the store. An absent stored
// token means the session starts anonymous.
func NewSession(store TokenStore) (*Session, error) {
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{token: token, store: store}, nil
}

// Token returns the current bearer token, empty when anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken installs a token, persisting it durably; an empty token clears
// both the in-memory and the stored value. The OnChange hook fires after
// the state is updated.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	s.token = token

	var err error
	if token == "" {
		err = s.store.Clear()
	} else {
		err = s.store.Save(token)
	}
	hook := s.OnChange
	authenticated := token != ""
	s.mu.Unlock()

	if hook != nil {
		hook(authenticated)
	}
	return err
}

// Logout clears the session. Calling it while already anonymous is a no-op
// from the state's perspective.
func (s *Session) Logout() error {
	return s.SetToken("")
}
