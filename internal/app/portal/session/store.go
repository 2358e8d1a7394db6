package session

import (
	"sync"

	"bizsuite-service/internal/pkg/dto/responses"
)

// Store holds who is signed in on the client side. Token writes go through
// the TokenStorage before the in-memory state flips, so a crash between the
// two never leaves the store claiming an identity it cannot prove.
type Store struct {
	mu      sync.RWMutex
	storage TokenStorage

	user          *responses.UserResponse
	company       *responses.CompanyResponse
	accessToken   string
	refreshToken  string
	authenticated bool
}

// NewStore restores the token pair from storage. A surviving access token
// marks the store authenticated; the identity itself is refilled by the
// first profile fetch.
func NewStore(storage TokenStorage) (*Store, error) {
	access, refresh, err := storage.Load()
	if err != nil {
		return nil, err
	}
	return &Store{
		storage:       storage,
		accessToken:   access,
		refreshToken:  refresh,
		authenticated: access != "",
	}, nil
}

func (s *Store) SetAuth(user responses.UserResponse, company responses.CompanyResponse, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Save(accessToken, refreshToken); err != nil {
		return err
	}
	s.user = &user
	s.company = &company
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.authenticated = true
	return nil
}

// SetIdentity fills in user and company after a session restore, when the
// tokens came from storage but the profile had to be fetched again.
func (s *Store) SetIdentity(user responses.UserResponse, company responses.CompanyResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.company = &company
}

// SetAccessToken replaces the access token after a refresh, keeping the
// stored refresh token.
func (s *Store) SetAccessToken(accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Save(accessToken, s.refreshToken); err != nil {
		return err
	}
	s.accessToken = accessToken
	s.authenticated = accessToken != ""
	return nil
}

// Logout wipes storage and memory together. After it returns no token is
// reachable through the store.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.storage.Clear()
	s.user = nil
	s.company = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.authenticated = false
	return err
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

func (s *Store) User() *responses.UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Store) Company() *responses.CompanyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.company == nil {
		return nil
	}
	company := *s.company
	return &company
}
